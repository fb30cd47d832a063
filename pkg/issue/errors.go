package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidReference  = errors.New("could not parse issue pattern")
	ErrEndpointBuild     = errors.New("could not build issue API endpoint")
	ErrMalformedResponse = errors.New("malformed issue status response")
)
