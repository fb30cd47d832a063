package config

import "errors"

// Config-specific error types.
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrConfigFileParse = errors.New("failed to parse config file")
)
