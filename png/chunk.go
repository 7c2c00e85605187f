package png

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

// MaxLength is the upper bound (exclusive) of a chunk's data length.
const MaxLength = 1 << 31

// Chunk is an immutable chunk: length, type, data and CRC.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk creates a chunk and computes its CRC. data is copied.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	d := make([]byte, len(data))
	copy(d, data)
	return &Chunk{
		length:    uint32(len(d)),
		chunkType: chunkType,
		data:      d,
		crc:       CalculateCRC(chunkType, d),
	}
}

// CalculateCRC returns the CRC-32 (ISO-HDLC) of type||data.
func CalculateCRC(chunkType ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(chunkType[:])
	h.Write(data)
	return h.Sum32()
}

// ParseChunk decodes the chunk at the head of b.
// Bytes following the CRC are ignored.
func ParseChunk(b []byte) (*Chunk, error) {
	r := bytes.NewReader(b)

	// length
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, fmt.Errorf("length: %w", ErrTruncated)
	}
	if length >= MaxLength {
		return nil, fmt.Errorf("length %d: %w", length, ErrLengthOverflow)
	}

	// type
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("type: %w", ErrTruncated)
	}
	chunkType, err := NewChunkType(raw)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}

	// data
	if int64(r.Len()) < int64(length) {
		return nil, fmt.Errorf("data: %w: want %d bytes, have %d", ErrTruncated, length, r.Len())
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("data: %w", ErrTruncated)
	}

	// CRC
	var crc uint32
	if err := binary.Read(r, binary.BigEndian, &crc); err != nil {
		return nil, fmt.Errorf("crc: %w", ErrTruncated)
	}
	calculated := CalculateCRC(chunkType, data)
	if crc != calculated {
		return nil, fmt.Errorf("crc: %w: stored %08x, calculated %08x", ErrCrcMismatch, crc, calculated)
	}

	return &Chunk{
		length:    length,
		chunkType: chunkType,
		data:      data,
		crc:       calculated,
	}, nil
}

func (c *Chunk) Length() uint32 {
	return c.length
}

func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Data returns a copy of the payload.
func (c *Chunk) Data() []byte {
	return append([]byte(nil), c.data...)
}

// Size is the encoded size: length, type, data and CRC.
func (c *Chunk) Size() int {
	return 4 + 4 + len(c.data) + 4
}

// DataString returns the payload as UTF-8 text, or as lowercase hex when it
// is not valid UTF-8.
func (c *Chunk) DataString() string {
	if utf8.Valid(c.data) {
		return string(c.data)
	}
	return hex.EncodeToString(c.data)
}

// Bytes returns the wire form of the chunk.
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, 0, c.Size())
	buf = binary.BigEndian.AppendUint32(buf, c.length)
	buf = append(buf, c.chunkType[:]...)
	buf = append(buf, c.data...)
	buf = binary.BigEndian.AppendUint32(buf, c.crc)
	return buf
}

// WriteTo writes the wire form of the chunk to w.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// String makes Chunk satisfy the Stringer interface.
func (c *Chunk) String() string {
	return fmt.Sprintf("Length: %d, Chunk type: %s, Data: %s, Crc: %d", c.length, c.chunkType, c.DataString(), c.crc)
}
