package rate_limiter

import (
	"golang.org/x/time/rate"
)

// Definition describes an APILimiter
type Definition struct {
	// the limiter name
	Name string
	// the actual limiter config
	FillRate   rate.Limit
	BucketSize int64
	// the max concurrency supported
	MaxConcurrency int64
}

// DefaultBlobAPILimiter keeps blob listing and download calls comfortably
// inside the storage account throttling limits
func DefaultBlobAPILimiter() *Definition {
	return &Definition{
		Name:           "azure_blob_api",
		FillRate:       50,
		BucketSize:     10,
		MaxConcurrency: 1,
	}
}
