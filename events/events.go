// Package events defines the progress events raised during a pipeline run.
// Observers receive them via [observable.Base].
package events

import (
	"github.com/openddlab/donorpipe/types"
)

type Event interface {
	Name() string
}

// Base is embedded in all events and carries the id of the pipeline run
type Base struct {
	ExecutionId string
}

func NewBase(executionId string) Base {
	return Base{ExecutionId: executionId}
}

// ArtifactDiscovered is raised for each blob the source lists
type ArtifactDiscovered struct {
	Base
	Info *types.ArtifactInfo
}

func (e *ArtifactDiscovered) Name() string { return "artifact_discovered" }

// ArtifactDownloaded is raised once an artifact has been staged locally
type ArtifactDownloaded struct {
	Base
	Info *types.DownloadedArtifactInfo
}

func (e *ArtifactDownloaded) Name() string { return "artifact_downloaded" }

// RecordExtracted is raised for each successfully parsed record
type RecordExtracted struct {
	Base
	EntryName string
}

func (e *RecordExtracted) Name() string { return "record_extracted" }

// RecordSkipped is raised for each malformed record - the run continues
type RecordSkipped struct {
	Base
	EntryName string
	Err       error
}

func (e *RecordSkipped) Name() string { return "record_skipped" }

// Complete is raised once at the end of a run
type Complete struct {
	Base
	RowCount  int
	SkipCount int
	Err       error
}

func (e *Complete) Name() string { return "complete" }

func NewCompletedEvent(executionId string, rowCount, skipCount int, err error) *Complete {
	return &Complete{
		Base:      NewBase(executionId),
		RowCount:  rowCount,
		SkipCount: skipCount,
		Err:       err,
	}
}
