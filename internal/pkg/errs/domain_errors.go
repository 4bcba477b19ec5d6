package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	ErrSpaceNotFound = errors.New("space not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidGesture   = errors.New("invalid pointer event")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected request")
	ErrMissingCredentials  = errors.New("upstream credentials not configured")

	ErrCacheMiss = errors.New("cache miss")
)
