package pipeline

import (
	"time"

	"github.com/openddlab/donorpipe/artifact_source"
	"github.com/openddlab/donorpipe/enrichment"
	"github.com/openddlab/donorpipe/extract"
	"github.com/openddlab/donorpipe/layout"
	"github.com/openddlab/donorpipe/observable"
	"github.com/openddlab/donorpipe/replacement"
	"github.com/openddlab/donorpipe/table"
)

type downloadConfig struct {
	account    string
	provider   artifact_source.CredentialProvider
	timeout    time.Duration
	observers  []observable.Observer
	extensions []string
}

// DownloadOption configures a download run
type DownloadOption func(*downloadConfig)

// WithAccount sets the storage account name (required)
func WithAccount(account string) DownloadOption {
	return func(c *downloadConfig) {
		c.account = account
	}
}

// WithCredentialProvider overrides the default Azure CLI credential lookup
func WithCredentialProvider(provider artifact_source.CredentialProvider) DownloadOption {
	return func(c *downloadConfig) {
		c.provider = provider
	}
}

// WithTimeout bounds the fetch - on expiry the run fails with a
// TransientNetworkError
func WithTimeout(timeout time.Duration) DownloadOption {
	return func(c *downloadConfig) {
		c.timeout = timeout
	}
}

// WithDownloadObserver registers an observer for fetch progress events
func WithDownloadObserver(o observable.Observer) DownloadOption {
	return func(c *downloadConfig) {
		c.observers = append(c.observers, o)
	}
}

// WithBundleExtensions restricts which blobs are bundled when downloading a
// whole prefix
func WithBundleExtensions(extensions ...string) DownloadOption {
	return func(c *downloadConfig) {
		c.extensions = extensions
	}
}

type loadConfig struct {
	extractOpts []extract.Option
	builderOpts []table.BuilderOption
	observers   []observable.Observer
}

// LoadOption configures a LoadTable run
type LoadOption func(*loadConfig)

// WithFilters appends filter/transform steps, applied in declared order
func WithFilters(steps ...table.Step) LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithSteps(steps...))
	}
}

// WithLayouts restricts extraction to entries matching one of the layouts
func WithLayouts(set *layout.Set) LoadOption {
	return func(c *loadConfig) {
		c.extractOpts = append(c.extractOpts, extract.WithLayouts(set))
	}
}

// WithReplacement applies a participant replacement roster before any other
// steps
func WithReplacement(roster *replacement.Roster) LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithSteps(replacement.Step(roster)))
	}
}

// WithSourceEnrichment sets the base provenance carried on every record
func WithSourceEnrichment(fields *enrichment.CommonFields) LoadOption {
	return func(c *loadConfig) {
		c.extractOpts = append(c.extractOpts, extract.WithEnrichment(fields))
	}
}

// WithStrictEmpty escalates an empty result to an EmptyResultError
func WithStrictEmpty() LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithStrictEmpty())
	}
}

// WithFlatten flattens nested mappings into separator-joined columns
func WithFlatten(separator string) LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithFlatten(separator))
	}
}

// WithSnakeCaseColumns normalizes column names to snake_case
func WithSnakeCaseColumns() LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithSnakeCaseColumns())
	}
}

// WithProvenance joins provenance fields into the table as columns
func WithProvenance() LoadOption {
	return func(c *loadConfig) {
		c.builderOpts = append(c.builderOpts, table.WithProvenance())
	}
}

// WithLoadObserver registers an observer for extraction progress events
func WithLoadObserver(o observable.Observer) LoadOption {
	return func(c *loadConfig) {
		c.observers = append(c.observers, o)
	}
}
