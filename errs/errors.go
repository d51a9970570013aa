// Package errs defines the error kinds surfaced by the pipeline.
// Fetch stage errors (AuthenticationError, NotFoundError,
// TransientNetworkError) abort a run; MalformedRecordError is per-record and
// non-fatal; EmptyResultError is advisory and only raised in strict mode.
package errs

import (
	"errors"
	"fmt"
)

// AuthenticationError indicates the ambient credential context is missing or
// expired - the caller must re-run the external login step (az login)
type AuthenticationError struct {
	Account string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for account %s - run 'az login' and retry: %v", e.Account, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates the requested container or blob does not exist
type NotFoundError struct {
	Container string
	BlobPath  string
	Err       error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("blob %s not found in container %s: %v", e.BlobPath, e.Container, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransientNetworkError indicates a retryable I/O failure (including fetch
// timeouts) - higher layers may wrap the fetch with a retry policy
type TransientNetworkError struct {
	Op  string
	Err error
}

func (e *TransientNetworkError) Error() string {
	return fmt.Sprintf("transient network error during %s: %v", e.Op, e.Err)
}

func (e *TransientNetworkError) Unwrap() error {
	return e.Err
}

// MalformedRecordError carries the entry name and the underlying parse
// diagnostic for a record that could not be parsed
type MalformedRecordError struct {
	EntryName string
	Err       error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: %v", e.EntryName, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// EmptyResultError indicates zero records survived filtering
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "no records survived filtering"
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsTransient(err error) bool {
	var target *TransientNetworkError
	return errors.As(err, &target)
}

func IsEmptyResult(err error) bool {
	var target *EmptyResultError
	return errors.As(err, &target)
}
