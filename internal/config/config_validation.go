// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database connection string and the token signing key have no
// defaults; the process must not start without them.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrMissingDatabaseURI)
	}

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.Storage.S3.Enabled() && cfg.Storage.S3.Region == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	return err
}
