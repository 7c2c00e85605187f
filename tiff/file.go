package tiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// maxIFDs bounds the IFD chain so that a looping "next" offset terminates.
const maxIFDs = 16

// File is a TIFF structure held in memory, such as the payload of an eXIf chunk.
type File struct {
	ByteOrder binary.ByteOrder
	IFDs      [][]*IFDEntry

	data []byte
}

// Parse parses the TIFF header and the IFD chain of b.
func Parse(b []byte) (*File, error) {
	if len(b) < 8 {
		return nil, errors.New("too short for a TIFF header")
	}

	f := &File{data: b}
	switch {
	case b[0] == 'I' && b[1] == 'I':
		f.ByteOrder = binary.LittleEndian
	case b[0] == 'M' && b[1] == 'M':
		f.ByteOrder = binary.BigEndian
	default:
		return nil, errors.New("invalid byte order")
	}

	// version
	if f.ByteOrder.Uint16(b[2:]) != 0x002a {
		return nil, errors.New("invalid 42")
	}

	offset := int64(f.ByteOrder.Uint32(b[4:]))
	for offset != 0 {
		if len(f.IFDs) == maxIFDs {
			return nil, errors.New("too many IFDs")
		}
		next, entries, err := f.parseIFD(offset)
		if err != nil {
			return nil, err
		}
		f.IFDs = append(f.IFDs, entries)
		offset = next
	}

	return f, nil
}

// String makes File satisfy the Stringer interface.
func (f *File) String() string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("  byte order: %s\n", f.ByteOrder))
	for i, entries := range f.IFDs {
		buf.WriteString(fmt.Sprintf("    ========= IFD: %d\n", i))
		for _, entry := range entries {
			buf.WriteString(entry.String())
			buf.WriteString("    ----\n")
		}
	}
	return buf.String()
}

// slice returns n bytes at offset, or an error if they are out of range.
func (f *File) slice(offset, n int64) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > int64(len(f.data)) {
		return nil, fmt.Errorf("offset 0x%08x+%d out of range", offset, n)
	}
	return f.data[offset : offset+n], nil
}
