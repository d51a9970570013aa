package artifact_source

import (
	"errors"
	"fmt"
	"os"

	"github.com/openddlab/donorpipe/archive"
	"github.com/openddlab/donorpipe/errs"
)

const FileSystemSourceIdentifier = "file_system"

func init() {
	// register source
	Factory.RegisterSources(NewFileSystemSource)
}

// FileSystemSource is a [Source] implementation that opens an already
// downloaded bundle from the local filesystem
type FileSystemSource struct {
	Config *FileSystemSourceConfig
}

func NewFileSystemSource() Source {
	return &FileSystemSource{}
}

func (s *FileSystemSource) Init(config *FileSystemSourceConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	s.Config = config
	return nil
}

func (s *FileSystemSource) Identifier() string {
	return FileSystemSourceIdentifier
}

func (s *FileSystemSource) Close() error {
	return nil
}

// OpenArchive opens the configured bundle
func (s *FileSystemSource) OpenArchive() (*archive.Archive, error) {
	if _, err := os.Stat(s.Config.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &errs.NotFoundError{BlobPath: s.Config.Path, Err: err}
		}
		return nil, fmt.Errorf("failed to stat archive %s: %w", s.Config.Path, err)
	}
	return archive.Open(s.Config.Path)
}
