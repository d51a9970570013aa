package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer bundles a set of named byte streams into a local zip archive.
// The fetcher uses it to collapse a whole container prefix into one bundle.
type Writer struct {
	path string
	file *os.File
	zw   *zip.Writer
}

func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for archive, %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file, %w", err)
	}

	return &Writer{
		path: path,
		file: file,
		zw:   zip.NewWriter(file),
	}, nil
}

// AddEntry writes one named entry from the given reader
func (w *Writer) AddEntry(name string, r io.Reader) error {
	entry, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s, %w", name, err)
	}

	if _, err := io.Copy(entry, r); err != nil {
		return fmt.Errorf("failed to write archive entry %s, %w", name, err)
	}
	return nil
}

// Close finalizes the archive. On error the partial file is removed so no
// unusable bundle is left behind.
func (w *Writer) Close() error {
	err := w.zw.Close()
	if closeErr := w.file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(w.path)
		return fmt.Errorf("failed to finalize archive %s, %w", w.path, err)
	}
	return nil
}

// Abort discards the archive and removes the partial file
func (w *Writer) Abort() {
	w.zw.Close()
	w.file.Close()
	os.Remove(w.path)
}
