package png

import (
	"bytes"
	"fmt"
	"io"
)

// Signature is the 8-byte magic number of a PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// File is a signature followed by an ordered sequence of chunks.
type File struct {
	signature [8]byte
	chunks    []*Chunk
}

// NewFile creates a file with the PNG signature and the given chunks.
func NewFile(chunks ...*Chunk) *File {
	f := &File{signature: Signature}
	f.chunks = append(f.chunks, chunks...)
	return f
}

// Parse parses a whole file. Any chunk error aborts the parse.
func Parse(b []byte) (*File, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, ErrInvalidSignature
	}

	f := &File{signature: Signature}
	offset := len(Signature)
	for offset < len(b) {
		// chunk = length, type, data, CRC
		c, err := ParseChunk(b[offset:])
		if err != nil {
			return nil, &ChunkError{Index: len(f.chunks), Offset: int64(offset), Err: err}
		}
		f.chunks = append(f.chunks, c)
		offset += c.Size()
	}

	return f, nil
}

func (f *File) Signature() [8]byte {
	return f.signature
}

// Chunks returns the chunks in stored order.
func (f *File) Chunks() []*Chunk {
	return append([]*Chunk(nil), f.chunks...)
}

func (f *File) Len() int {
	return len(f.chunks)
}

// Append adds c at the end of the file.
func (f *File) Append(c *Chunk) {
	f.chunks = append(f.chunks, c)
}

// InsertBefore inserts c ahead of the first chunk of the given type, or
// appends it when there is none.
func (f *File) InsertBefore(chunkType string, c *Chunk) {
	i := f.index(chunkType)
	if i < 0 {
		f.Append(c)
		return
	}
	f.chunks = append(f.chunks, nil)
	copy(f.chunks[i+1:], f.chunks[i:])
	f.chunks[i] = c
}

// ChunkByType returns the first chunk of the given type, or nil.
func (f *File) ChunkByType(chunkType string) *Chunk {
	i := f.index(chunkType)
	if i < 0 {
		return nil
	}
	return f.chunks[i]
}

// ChunksByType returns every chunk of the given type in stored order.
func (f *File) ChunksByType(chunkType string) []*Chunk {
	var chunks []*Chunk
	for _, c := range f.chunks {
		if c.chunkType.String() == chunkType {
			chunks = append(chunks, c)
		}
	}
	return chunks
}

// RemoveByType removes and returns the first chunk of the given type.
func (f *File) RemoveByType(chunkType string) (*Chunk, error) {
	i := f.index(chunkType)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, chunkType)
	}
	c := f.chunks[i]
	copy(f.chunks[i:], f.chunks[i+1:])
	f.chunks[len(f.chunks)-1] = nil
	f.chunks = f.chunks[:len(f.chunks)-1]
	return c, nil
}

// Bytes serializes the file.
func (f *File) Bytes() []byte {
	size := len(f.signature)
	for _, c := range f.chunks {
		size += c.Size()
	}
	buf := make([]byte, 0, size)
	buf = append(buf, f.signature[:]...)
	for _, c := range f.chunks {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}

// WriteTo writes the serialized file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

func (f *File) index(chunkType string) int {
	for i, c := range f.chunks {
		if c.chunkType.String() == chunkType {
			return i
		}
	}
	return -1
}
