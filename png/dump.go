package png

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/ysh86/pngme/tiff"
)

// DumpTo prints the chunk header and, for well-known types, the decoded payload.
func (c *Chunk) DumpTo(w io.Writer) {
	fmt.Fprintf(w, "chunk '%v' (%d bytes, crc %08x)", c.chunkType, c.length, c.crc)

	switch c.chunkType {
	case IHDR:
		if len(c.data) != 13 {
			fmt.Fprintf(w, ": corrupted!\n")
			return
		}
		fmt.Fprintf(w, ": ")
		fmt.Fprintf(w, "Width = %d, ", binary.BigEndian.Uint32(c.data[0:]))
		fmt.Fprintf(w, "Height = %d, ", binary.BigEndian.Uint32(c.data[4:]))
		fmt.Fprintf(w, "Bit depth = %d, ", c.data[8])
		fmt.Fprintf(w, "Color type = %d, ", c.data[9])
		fmt.Fprintf(w, "Compression method = %d, ", c.data[10])
		fmt.Fprintf(w, "Filter method = %d, ", c.data[11])
		fmt.Fprintf(w, "Interlace method = %d\n", c.data[12])
	case SRGB:
		if len(c.data) != 1 {
			fmt.Fprintf(w, ": corrupted!\n")
			return
		}
		fmt.Fprintf(w, ": Rendering intent = %d\n", c.data[0])
	case TEXT:
		t, err := ParseText(c.data)
		if err != nil {
			fmt.Fprintf(w, ": corrupted!\n")
			return
		}
		fmt.Fprintf(w, ": %s = \"%s\"\n", t.Keyword, t.Text)
	case ITXT:
		t, err := ParseInternationalText(c.data)
		if err != nil {
			fmt.Fprintf(w, ": corrupted!\n")
			return
		}
		fmt.Fprintf(w, ": %s [%s] %s\n", t.Keyword, t.LanguageTag, t.TranslatedKeyword)
		text := t.Text
		if t.Keyword == XMPKeyword {
			if s, err := IndentXMP(text); err == nil {
				text = s
			}
		}
		for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	case EXIF:
		f, err := tiff.Parse(c.data)
		if err != nil {
			fmt.Fprintf(w, ": %v\n", err)
			return
		}
		fmt.Fprintf(w, "\n%s", f)
	default:
		fmt.Fprintf(w, "\n")
	}
}
