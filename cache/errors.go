package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a book does not exist or is not published.
	// Terminal — callers should not retry.
	ErrNotFound = errors.New("cache: book not found")
	// ErrAccessDenied is returned when entitlement resolves to none.
	ErrAccessDenied = errors.New("cache: access denied")
	// ErrUnauthenticated is returned when an operation requires a user
	// context and none was supplied.
	ErrUnauthenticated = errors.New("cache: unauthenticated")
)

// TransientError wraps a durable-store failure on the read path. The cache
// layer never retries these itself — latency stays bounded and the caller
// decides whether to retry with backoff.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("cache: transient store failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
