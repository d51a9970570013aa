package artifact_source

import (
	"context"
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/openddlab/donorpipe/errs"
)

// classifyError maps an Azure SDK failure onto the pipeline error kinds.
// Anything not clearly an auth or not-found failure is treated as transient
// so higher layers can wrap the fetch with a retry policy.
func classifyError(err error, op, account, container, blobPath string) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &errs.AuthenticationError{Account: account, Err: err}
		case http.StatusNotFound:
			return &errs.NotFoundError{Container: container, BlobPath: blobPath, Err: err}
		}
		return &errs.TransientNetworkError{Op: op, Err: err}
	}

	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return &errs.AuthenticationError{Account: account, Err: err}
	}

	// fetch timeouts and cancellations are retryable from the caller's view
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &errs.TransientNetworkError{Op: op, Err: err}
	}

	return &errs.TransientNetworkError{Op: op, Err: err}
}
