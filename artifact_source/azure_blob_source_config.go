package artifact_source

import (
	"errors"
	"fmt"
	"strings"
)

type AzureBlobSourceConfig struct {
	// storage account name - the service URL is derived from it
	Account string
	// file extensions treated as records when bundling a prefix
	Extensions []string
}

func (c *AzureBlobSourceConfig) Validate() error {
	if c.Account == "" {
		return errors.New("account is required")
	}

	// Check format of extensions
	var invalidExtensions []string
	for _, e := range c.Extensions {
		if len(e) == 0 {
			invalidExtensions = append(invalidExtensions, "<empty>")
		} else if e[0] != '.' {
			invalidExtensions = append(invalidExtensions, e)
		}
	}
	if len(invalidExtensions) > 0 {
		return fmt.Errorf("invalid extensions: %s", strings.Join(invalidExtensions, ","))
	}

	return nil
}

// ServiceURL returns the blob endpoint for the configured account
func (c *AzureBlobSourceConfig) ServiceURL() string {
	return fmt.Sprintf("https://%s.blob.core.windows.net", c.Account)
}
