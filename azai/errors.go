// Copyright (c) Microsoft. All rights reserved.

package azai

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrConfiguration indicates invalid or missing local configuration:
	// a malformed connection string, a missing endpoint, an absent credential.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedAuth is returned when a resolved connection uses an
	// authentication type this client cannot drive.
	ErrUnsupportedAuth = fmt.Errorf("%w: unsupported authentication type", ErrConfiguration)

	// ErrService is the base error for remote service failures.
	ErrService = errors.New("service error")

	// ErrAuth indicates the service rejected the request's credentials.
	ErrAuth = fmt.Errorf("%w: authentication", ErrService)

	// ErrInvalidRequest indicates the service judged the request malformed.
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrService)

	// ErrInvalidResponse indicates the service returned a payload this
	// client could not interpret.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrService)

	// ErrRateLimit indicates the service throttled the request.
	ErrRateLimit = fmt.Errorf("%w: rate limited", ErrService)
)

// ServiceError provides rich context for remote service failures.
// Use errors.As to extract it from a wrapped error chain.
type ServiceError struct {
	StatusCode int
	Message    string
	Code       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("service error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("service error %d: %s", e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }
