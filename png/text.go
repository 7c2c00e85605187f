package png

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"

	"github.com/beevik/etree"
)

// XMPKeyword is the iTXt keyword under which XMP packets are stored.
const XMPKeyword = "XML:com.adobe.xmp"

// maxTextSize bounds the inflated size of a compressed iTXt text.
const maxTextSize = 8 << 20

// TextData is the decoded payload of a tEXt or iTXt chunk.
type TextData struct {
	Keyword           string
	Compressed        bool
	LanguageTag       string
	TranslatedKeyword string
	Text              string
}

// ParseText decodes a tEXt payload: keyword, NUL, text.
func ParseText(data []byte) (*TextData, error) {
	keyword, text, ok := bytes.Cut(data, []byte{0})
	if !ok || len(keyword) == 0 || len(keyword) > 79 {
		return nil, errors.New("invalid tEXt keyword")
	}
	return &TextData{Keyword: latin1(keyword), Text: latin1(text)}, nil
}

// ParseInternationalText decodes an iTXt payload, inflating the text if needed.
func ParseInternationalText(data []byte) (*TextData, error) {
	keyword, rest, ok := bytes.Cut(data, []byte{0})
	if !ok || len(keyword) == 0 || len(keyword) > 79 {
		return nil, errors.New("invalid iTXt keyword")
	}
	if len(rest) < 2 {
		return nil, errors.New("missing iTXt compression fields")
	}
	compressed := rest[0] == 1
	if compressed && rest[1] != 0 {
		return nil, errors.New("unknown iTXt compression method")
	}
	lang, rest, ok := bytes.Cut(rest[2:], []byte{0})
	if !ok {
		return nil, errors.New("missing iTXt language tag")
	}
	translated, text, ok := bytes.Cut(rest, []byte{0})
	if !ok {
		return nil, errors.New("missing iTXt translated keyword")
	}

	if compressed {
		zr, err := zlib.NewReader(bytes.NewReader(text))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		if text, err = io.ReadAll(io.LimitReader(zr, maxTextSize+1)); err != nil {
			return nil, err
		}
		if len(text) > maxTextSize {
			return nil, errors.New("iTXt text exceeds 8 MiB")
		}
	}

	return &TextData{
		Keyword:           string(keyword),
		Compressed:        compressed,
		LanguageTag:       string(lang),
		TranslatedKeyword: string(translated),
		Text:              string(text),
	}, nil
}

// IndentXMP re-indents an XMP packet for display.
func IndentXMP(packet string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(packet); err != nil {
		return "", err
	}
	doc.Indent(2)
	return doc.WriteToString()
}

// tEXt is ISO 8859-1
func latin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}
