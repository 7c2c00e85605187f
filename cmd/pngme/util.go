package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/ysh86/pngme/png"
)

func readPNG(path string) (*png.File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := png.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().Str("file", path).Int("chunks", f.Len()).Str("size", humanize.IBytes(uint64(len(b)))).Msg("Parsed")
	return f, nil
}

// writePNG replaces path with f, keeping the permissions of an existing file.
// The bytes go to a temporary file in the same directory that is then renamed over path.
func writePNG(path string, f *png.File) error {
	mode := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	b := f.Bytes()
	if err := writeFileAtomic(path, b, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Debug().Str("file", path).Int("chunks", f.Len()).Str("size", humanize.IBytes(uint64(len(b)))).Msg("Wrote")
	return nil
}

func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func parseChunkType(s string) (png.ChunkType, error) {
	t, err := png.ParseChunkType(s)
	if err != nil {
		return t, err
	}
	if !t.IsValid() {
		logger.Warn().Stringer("type", t).Msg("Reserved bit is set; other readers may reject this chunk")
	}
	return t, nil
}
