package artifact_source

import (
	"github.com/openddlab/donorpipe/observable"
	"github.com/openddlab/donorpipe/rate_limiter"
)

// SourceOption is a functional option applied at Init time
type SourceOption func(*AzureBlobSource)

// WithCredentialProvider overrides the default Azure CLI credential lookup
func WithCredentialProvider(provider CredentialProvider) SourceOption {
	return func(s *AzureBlobSource) {
		s.credentialProvider = provider
	}
}

// WithAPILimiter overrides the default blob API rate limiter
func WithAPILimiter(d *rate_limiter.Definition) SourceOption {
	return func(s *AzureBlobSource) {
		s.limiter = rate_limiter.NewAPILimiter(d)
	}
}

// WithObserver registers an observer for artifact discovery/download events
func WithObserver(o observable.Observer) SourceOption {
	return func(s *AzureBlobSource) {
		s.AddObserver(o)
	}
}

// WithExecutionId sets the run id carried on raised events
func WithExecutionId(executionId string) SourceOption {
	return func(s *AzureBlobSource) {
		s.executionId = executionId
	}
}
