// Package archive provides the zip-backed Archive consumed by the extractor,
// and the Writer used to bundle downloaded blobs.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Entry is one named member of an Archive
type Entry struct {
	Name string
	Size uint64

	open func() (io.ReadCloser, error)
}

// Open returns a reader over the entry content
func (e *Entry) Open() (io.ReadCloser, error) {
	return e.open()
}

// Bytes reads the whole entry content
func (e *Entry) Bytes() ([]byte, error) {
	r, err := e.open()
	if err != nil {
		return nil, fmt.Errorf("error opening entry %s: %w", e.Name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading entry %s: %w", e.Name, err)
	}
	return data, nil
}

// Archive is an opaque container of named entries, backed by a zip file.
// Entries are exposed in archive order for reproducibility. An Archive opened
// with temp=true removes its backing file on Close.
type Archive struct {
	Path string

	entries []*Entry
	closer  io.Closer
	temp    bool
	closed  bool
}

// Open opens a zip archive at the given path
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("error opening archive %s: %w", path, err)
	}

	res := &Archive{
		Path:   path,
		closer: zr,
	}
	res.setEntries(&zr.Reader)
	return res, nil
}

// OpenTemp opens a zip archive whose backing file is deleted on Close -
// used for archives staged to a temp path by the fetcher
func OpenTemp(path string) (*Archive, error) {
	a, err := Open(path)
	if err != nil {
		return nil, err
	}
	a.temp = true
	return a, nil
}

// FromBytes opens a zip archive held in memory
func FromBytes(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("error opening archive from bytes: %w", err)
	}

	res := &Archive{}
	res.setEntries(zr)
	return res, nil
}

func (a *Archive) setEntries(zr *zip.Reader) {
	a.entries = make([]*Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		a.entries = append(a.entries, &Entry{
			Name: f.Name,
			Size: f.UncompressedSize64,
			open: f.Open,
		})
	}
}

// Entries returns the archive entries in archive order
func (a *Archive) Entries() []*Entry {
	return a.entries
}

// Close releases the archive and removes the backing file if it was staged
// to a temp path. Safe to call more than once.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	if a.closer != nil {
		err = a.closer.Close()
	}
	if a.temp && a.Path != "" {
		if rmErr := os.Remove(a.Path); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}
