package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or inconsistent.
var (
	// ErrMissingDatabaseURI indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseURI = errors.New("database connection string is not set")
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token signing key is not set")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid image storage settings
	// (for example, an S3 bucket without a region).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
