package forge

import "errors"

// Forge-specific errors.
var (
	ErrNoRepository         = errors.New("no repository found")
	ErrNoEligibleRemote     = errors.New("no upstream or origin remote")
	ErrUnparseableRemoteURL = errors.New("unparseable remote URL")
)
