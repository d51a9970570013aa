package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/openddlab/donorpipe/constants"
)

const (
	EntryLoaderIdentifier     = "entry_loader"
	GzipEntryLoaderIdentifier = "gzip_entry_loader"
)

// EntryLoader loads entry data and performs any necessary decompression
type EntryLoader interface {
	Identifier() string
	Load(entry *Entry) ([]byte, error)
}

// PlainEntryLoader reads an entry as-is
type PlainEntryLoader struct{}

func NewPlainEntryLoader() EntryLoader {
	return &PlainEntryLoader{}
}

func (l PlainEntryLoader) Identifier() string {
	return EntryLoaderIdentifier
}

func (l PlainEntryLoader) Load(entry *Entry) ([]byte, error) {
	return entry.Bytes()
}

// GzipEntryLoader decompresses a gzipped entry
type GzipEntryLoader struct{}

func NewGzipEntryLoader() EntryLoader {
	return &GzipEntryLoader{}
}

func (l GzipEntryLoader) Identifier() string {
	return GzipEntryLoaderIdentifier
}

func (l GzipEntryLoader) Load(entry *Entry) ([]byte, error) {
	r, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", entry.Name, err)
	}
	defer r.Close()

	gzReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error creating gzip reader for %s: %w", entry.Name, err)
	}
	defer gzReader.Close()

	data, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", entry.Name, err)
	}
	return data, nil
}

// LoaderFor returns the loader appropriate for the entry name
func LoaderFor(name string) EntryLoader {
	if strings.HasSuffix(strings.ToLower(name), constants.GzipJsonExtension) {
		return NewGzipEntryLoader()
	}
	return NewPlainEntryLoader()
}
