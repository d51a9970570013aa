package artifact_source

import (
	"errors"
)

type FileSystemSourceConfig struct {
	// path to the local bundle
	Path string
}

func (c *FileSystemSourceConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}
