package png

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrLengthOverflow    = errors.New("length exceeds 2^31-1")
	ErrTruncated         = errors.New("truncated")
	ErrInvalidTypeByte   = errors.New("invalid chunk type byte")
	ErrInvalidTypeLength = errors.New("chunk type must be 4 bytes")
	ErrCrcMismatch       = errors.New("crc mismatch")
	ErrChunkNotFound     = errors.New("chunk not found")
)

// ChunkError reports which chunk of a stream failed to parse.
type ChunkError struct {
	Index  int   // position in the chunk sequence
	Offset int64 // byte offset from the start of the file
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk #%d at 0x%08x: %v", e.Index, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
