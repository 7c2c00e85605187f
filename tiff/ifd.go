package tiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// IFD Tag
const (
	ImageWidth        uint16 = 0x0100
	ImageLength       uint16 = 0x0101
	Make              uint16 = 0x010f
	Model             uint16 = 0x0110
	Orientation       uint16 = 0x0112
	XResolution       uint16 = 0x011a
	YResolution       uint16 = 0x011b
	ResolutionUnit    uint16 = 0x0128
	Software          uint16 = 0x0131
	DateTime          uint16 = 0x0132
	ExifIFDPointer    uint16 = 0x8769
	GPSInfoIFDPointer uint16 = 0x8825
)

var tagName = map[uint16]string{
	ImageWidth:        "ImageWidth",
	ImageLength:       "ImageLength",
	Make:              "Make",
	Model:             "Model",
	Orientation:       "Orientation",
	XResolution:       "XResolution",
	YResolution:       "YResolution",
	ResolutionUnit:    "ResolutionUnit",
	Software:          "Software",
	DateTime:          "DateTime",
	ExifIFDPointer:    "ExifIFDPointer",
	GPSInfoIFDPointer: "GPSInfoIFDPointer",
}

// IFD Type
const (
	InvalidType uint16 = iota

	BYTE      // []uint8
	ASCII     // string (NUL terminated)
	SHORT     // []uint16
	LONG      // []uint32
	RATIONAL  // [][2]uint32 {num, den}
	SBYTE     // []int8
	UNDEFINED // []byte
	SSHORT    // []int16
	SLONG     // []int32
	SRATIONAL // [][2]int32 {num, den}
)

var elementSize = map[uint16]int64{
	BYTE:      1,
	ASCII:     1,
	SHORT:     2,
	LONG:      4,
	RATIONAL:  4 + 4,
	SBYTE:     1,
	UNDEFINED: 1,
	SSHORT:    2,
	SLONG:     4,
	SRATIONAL: 4 + 4,
}

// IFDEntry is the IFD entry
type IFDEntry struct {
	Tag     uint16
	IFDType uint16
	Count   uint32
	Offset  uint32 // 0 if the value is inline

	Value interface{}
}

// Name returns the tag name, or its hex code if unknown.
func (e *IFDEntry) Name() string {
	if name, ok := tagName[e.Tag]; ok {
		return name
	}
	return fmt.Sprintf("%04xh", e.Tag)
}

// String makes IFDEntry satisfy the Stringer interface.
func (e *IFDEntry) String() string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("    Tag: %s\n", e.Name()))
	buf.WriteString(fmt.Sprintf("    Type: %d\n", e.IFDType))
	buf.WriteString(fmt.Sprintf("    Count: %d\n", e.Count))
	if e.Offset != 0 {
		buf.WriteString(fmt.Sprintf("    Offset: 0x%08x\n", e.Offset))
	}
	buf.WriteString(fmt.Sprintf("    Value: %v\n", e.Value))

	return buf.String()
}

func (f *File) parseIFD(offset int64) (int64, []*IFDEntry, error) {
	head, err := f.slice(offset, 2)
	if err != nil {
		return 0, nil, fmt.Errorf("IFD: %v", err)
	}
	num := int64(f.ByteOrder.Uint16(head))

	body, err := f.slice(offset+2, num*12+4)
	if err != nil {
		return 0, nil, fmt.Errorf("IFD entries: %v", err)
	}

	entries := make([]*IFDEntry, 0, num)
	for i := int64(0); i < num; i++ {
		raw := body[i*12 : i*12+12]
		entry := &IFDEntry{
			Tag:     f.ByteOrder.Uint16(raw[0:]),
			IFDType: f.ByteOrder.Uint16(raw[2:]),
			Count:   f.ByteOrder.Uint32(raw[4:]),
		}

		// Offset or Value
		size, known := elementSize[entry.IFDType]
		total := size * int64(entry.Count)
		switch {
		case !known:
			// unknown type: keep the raw field
			entry.Value = append([]byte(nil), raw[8:12]...)
		case total > 4:
			entry.Offset = f.ByteOrder.Uint32(raw[8:])
			v, err := f.slice(int64(entry.Offset), total)
			if err != nil {
				return 0, entries, fmt.Errorf("tag %s: %v", entry.Name(), err)
			}
			entry.Value = decodeValues(entry.IFDType, entry.Count, v, f.ByteOrder)
		default:
			entry.Value = decodeValues(entry.IFDType, entry.Count, raw[8:12], f.ByteOrder)
		}

		entries = append(entries, entry)
	}

	next := int64(f.ByteOrder.Uint32(body[num*12:]))
	return next, entries, nil
}

func decodeValues(typ uint16, count uint32, b []byte, bo binary.ByteOrder) interface{} {
	n := int(count)
	switch typ {
	case ASCII:
		return string(bytes.TrimRight(b[:n], "\x00"))
	case BYTE, UNDEFINED:
		return append([]byte(nil), b[:n]...)
	case SBYTE:
		vs := make([]int8, n)
		for i := range vs {
			vs[i] = int8(b[i])
		}
		return vs
	case SHORT:
		vs := make([]uint16, n)
		for i := range vs {
			vs[i] = bo.Uint16(b[i*2:])
		}
		return vs
	case SSHORT:
		vs := make([]int16, n)
		for i := range vs {
			vs[i] = int16(bo.Uint16(b[i*2:]))
		}
		return vs
	case LONG:
		vs := make([]uint32, n)
		for i := range vs {
			vs[i] = bo.Uint32(b[i*4:])
		}
		return vs
	case SLONG:
		vs := make([]int32, n)
		for i := range vs {
			vs[i] = int32(bo.Uint32(b[i*4:]))
		}
		return vs
	case RATIONAL:
		vs := make([][2]uint32, n)
		for i := range vs {
			vs[i] = [2]uint32{bo.Uint32(b[i*8:]), bo.Uint32(b[i*8+4:])}
		}
		return vs
	case SRATIONAL:
		vs := make([][2]int32, n)
		for i := range vs {
			vs[i] = [2]int32{int32(bo.Uint32(b[i*8:])), int32(bo.Uint32(b[i*8+4:]))}
		}
		return vs
	}
	return nil
}
