// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aleksei Avrorin

package config

import "time"

// Fixed defaults applied when no source supplies a value. The listen address
// and database URL mirror the environment contract of the API (SERVER_ADDRESS
// and STORAGE_DB_DATABASE_URI with built-in fallbacks).
const (
	DefaultHTTPAddress    = ":8080"
	DefaultDSN            = "postgres://localhost:5432/taskauth?sslmode=disable"
	DefaultRequestTimeout = 30 * time.Second

	DefaultClientAddress = "http://localhost:8080"
	DefaultSessionDBPath = "task-auth-session.db"
	DefaultClientTimeout = 30 * time.Second
)

// validate checks the final merged [StructuredConfig] and fills in defaults
// for any field no source provided. It never fails for the server: every
// setting has a usable fallback.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	return nil
}

// validate fills in defaults for the terminal client configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientTimeout
	}

	if cfg.Storage.SessionDBPath == "" {
		cfg.Storage.SessionDBPath = DefaultSessionDBPath
	}

	return nil
}
