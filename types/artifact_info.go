package types

import (
	"github.com/openddlab/donorpipe/enrichment"
)

// ArtifactInfo describes a remote artifact discovered by a source
type ArtifactInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`

	SourceEnrichment *enrichment.CommonFields `json:"-"`
}

// ArtifactInfoOpts is a function that sets options on an ArtifactInfo
type ArtifactInfoOpts func(*ArtifactInfo)

// WithEnrichmentFields sets the source enrichment fields
func WithEnrichmentFields(fields *enrichment.CommonFields) ArtifactInfoOpts {
	return func(i *ArtifactInfo) {
		i.SourceEnrichment = fields
	}
}

// WithSize sets the artifact size
func WithSize(size int64) ArtifactInfoOpts {
	return func(i *ArtifactInfo) {
		i.Size = size
	}
}

func NewArtifactInfo(name string, opts ...ArtifactInfoOpts) *ArtifactInfo {
	res := &ArtifactInfo{
		Name: name,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// DownloadedArtifactInfo describes an artifact staged to a local path
type DownloadedArtifactInfo struct {
	ArtifactInfo
	LocalPath string `json:"local_path"`
}

func NewDownloadedArtifactInfo(info *ArtifactInfo, localPath string, size int64) *DownloadedArtifactInfo {
	return &DownloadedArtifactInfo{
		ArtifactInfo: ArtifactInfo{
			Name:             info.Name,
			Size:             size,
			SourceEnrichment: info.SourceEnrichment,
		},
		LocalPath: localPath,
	}
}
