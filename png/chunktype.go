package png

import (
	"fmt"
)

// ChunkType is the 4-byte type code of a chunk.
//
// Bit 5 of each byte is a property flag:
//
//	byte 0: ancillary, byte 1: private, byte 2: reserved, byte 3: safe-to-copy
type ChunkType [4]byte

// well-known types
var (
	IHDR = MustParseChunkType("IHDR")
	IEND = MustParseChunkType("IEND")
	SRGB = MustParseChunkType("sRGB")
	TEXT = MustParseChunkType("tEXt")
	ITXT = MustParseChunkType("iTXt")
	EXIF = MustParseChunkType("eXIf")
)

// NewChunkType validates raw bytes as a chunk type.
func NewChunkType(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isAlpha(c) {
			return ChunkType{}, fmt.Errorf("%w: 0x%02x at %d", ErrInvalidTypeByte, c, i)
		}
	}
	return ChunkType(b), nil
}

// ParseChunkType converts a 4-letter string such as "tEXt" to a chunk type.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidTypeLength, s)
	}
	var b [4]byte
	copy(b[:], s)
	return NewChunkType(b)
}

// MustParseChunkType is like ParseChunkType but panics on error.
func MustParseChunkType(s string) ChunkType {
	t, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t ChunkType) Bytes() [4]byte {
	return t
}

func (t ChunkType) IsCritical() bool {
	return !t.bit5(0)
}

func (t ChunkType) IsPublic() bool {
	return !t.bit5(1)
}

func (t ChunkType) IsReservedBitValid() bool {
	return !t.bit5(2)
}

func (t ChunkType) IsSafeToCopy() bool {
	return t.bit5(3)
}

// IsValid reports whether the reserved bit is clear.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

func (t ChunkType) String() string {
	return string(t[:])
}

// UnmarshalText makes ChunkType satisfy encoding.TextUnmarshaler.
func (t *ChunkType) UnmarshalText(text []byte) error {
	v, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t ChunkType) bit5(i int) bool {
	return t[i]&0x20 != 0
}

func isAlpha(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
