package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysh86/pngme/png"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagPrint = printFlags{Type: "*"}

	var out, errOut bytes.Buffer
	cmdMain.SetOut(&out)
	cmdMain.SetErr(&errOut)
	cmdMain.SetArgs(append([]string{"--no-color"}, args...))
	err := cmdMain.Execute()
	return out.String(), err
}

func writeTestPNG(t *testing.T) string {
	t.Helper()

	ihdr := []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}
	f := png.NewFile(
		png.NewChunk(png.IHDR, ihdr),
		png.NewChunk(png.MustParseChunkType("IDAT"), []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}),
		png.NewChunk(png.IEND, nil),
	)
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, f.Bytes(), 0600))
	return path
}

func TestEncodeDecodeRemove(t *testing.T) {
	path := writeTestPNG(t)

	_, err := execute(t, "encode", path, "RuSt", "This is a secret message!")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	f, err := png.Parse(b)
	require.NoError(t, err)
	chunks := f.Chunks()
	require.Len(t, chunks, 4)
	assert.Equal(t, "RuSt", chunks[2].Type().String())
	assert.Equal(t, png.IEND, chunks[3].Type())

	out, err := execute(t, "decode", path, "RuSt")
	require.NoError(t, err)
	assert.Equal(t, "This is a secret message!\n", out)

	out, err = execute(t, "remove", path, "RuSt")
	require.NoError(t, err)
	assert.Contains(t, out, "Chunk type: RuSt")

	_, err = execute(t, "decode", path, "RuSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestEncodeToOutput(t *testing.T) {
	path := writeTestPNG(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "out.png")
	_, err = execute(t, "encode", path, "ruSt", "hello", output)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	out, err := execute(t, "decode", output, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestEncodeInvalidType(t *testing.T) {
	path := writeTestPNG(t)
	_, err := execute(t, "encode", path, "Ru5t", "hello")
	require.ErrorIs(t, err, png.ErrInvalidTypeByte)

	_, err = execute(t, "encode", path, "RuStt", "hello")
	require.ErrorIs(t, err, png.ErrInvalidTypeLength)
}

func TestRemoveNotFound(t *testing.T) {
	path := writeTestPNG(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = execute(t, "remove", path, "RuSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCorruptFile(t *testing.T) {
	path := writeTestPNG(t)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	b[len(b)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, b, 0600))

	_, err = execute(t, "print", path)
	require.ErrorIs(t, err, png.ErrCrcMismatch)
}

func TestPrint(t *testing.T) {
	path := writeTestPNG(t)
	_, err := execute(t, "encode", path, "tEXt", "Comment\x00hi")
	require.NoError(t, err)

	out, err := execute(t, "print", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "IHDR")
	assert.Contains(t, lines[0], "critical,public")
	assert.Contains(t, lines[2], "tEXt")
	assert.Contains(t, lines[2], "ancillary,public,safe-to-copy")
	assert.True(t, strings.HasPrefix(lines[4], "4 of 4 chunks"), lines[4])

	out, err = execute(t, "print", "--type", "I*", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "tEXt")
	assert.Contains(t, out, "3 of 4 chunks")

	out, err = execute(t, "print", "-v", "-t", "tEXt", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Comment = "hi"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pngme dev\n", out)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "json", "debug")
	require.NoError(t, err)
	l.Debug().Str("file", "x.png").Msg("Parsed")
	assert.Contains(t, buf.String(), `"message":"Parsed"`)
	assert.Contains(t, buf.String(), `"level":"debug"`)

	buf.Reset()
	l, err = newLogger(&buf, "text", "warn")
	require.NoError(t, err)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN")

	_, err = newLogger(&buf, "xml", "warn")
	require.Error(t, err)
	_, err = newLogger(&buf, "text", "loud")
	require.Error(t, err)
}

func TestWritePNGKeepsMode(t *testing.T) {
	path := writeTestPNG(t)
	f, err := readPNG(path)
	require.NoError(t, err)
	f.Append(png.NewChunk(png.MustParseChunkType("RuSt"), []byte("hello")))

	require.NoError(t, writePNG(path, f))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), st.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test.png", entries[0].Name())
}

func TestWritePNGFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.png")
	require.NoError(t, os.Mkdir(target, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0600))

	err := writePNG(target, png.NewFile())
	require.Error(t, err)

	b, err := os.ReadFile(filepath.Join(target, "keep"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "target.png", entries[0].Name())
}

func TestLogSettingsFromEnv(t *testing.T) {
	t.Setenv("PNGME_LOG_FORMAT", "xml")
	_, err := execute(t, "version")
	require.EqualError(t, err, `log format "xml" is not supported`)

	t.Setenv("PNGME_LOG_FORMAT", "json")
	t.Setenv("PNGME_LOG_LEVEL", "loud")
	_, err = execute(t, "version")
	require.EqualError(t, err, `log level "loud" is not supported`)

	t.Setenv("PNGME_LOG_LEVEL", "debug")
	_, err = execute(t, "version")
	require.NoError(t, err)
}
