package extract

import (
	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/layout"
	"github.com/openddlab/donorpipe/observable"
	"github.com/openddlab/donorpipe/types"
)

// Option is a functional option applied when creating an Extractor
type Option func(*Extractor)

// WithExtensions overrides the entry extensions treated as records
// (default .json and .json.gz)
func WithExtensions(extensions ...string) Option {
	return func(e *Extractor) {
		e.extensions = types.NewExtensionLookup(extensions)
	}
}

// WithLayouts restricts extraction to entries matching one of the layouts
// and attaches the captured properties to each record
func WithLayouts(set *layout.Set) Option {
	return func(e *Extractor) {
		e.layouts = set
	}
}

// WithEnrichment sets the base provenance fields carried on every record,
// typically populated by the artifact source
func WithEnrichment(fields *enrichment.CommonFields) Option {
	return func(e *Extractor) {
		e.enrich = fields
	}
}

// WithObserver registers an observer for record extracted/skipped events
func WithObserver(o observable.Observer) Option {
	return func(e *Extractor) {
		e.AddObserver(o)
	}
}

// WithExecutionId sets the run id carried on raised events
func WithExecutionId(executionId string) Option {
	return func(e *Extractor) {
		e.executionId = executionId
	}
}
