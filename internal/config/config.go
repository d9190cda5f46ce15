// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after all sources are merged.
const (
	DefaultHTTPAddress       = "http://localhost:8000"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultKeyTTL            = 15 * time.Minute
	DefaultKDFIterations     = 100_000
	MinKDFIterations         = 100_000
	DefaultReauthInterval    = 60 * time.Second
	DefaultMaxReauthAttempts = 3
	DefaultLogLevel          = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-owl client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the session metadata store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds key custody settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds re-authentication monitor settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound transport to the backend.
type Adapter struct {
	// HTTPAddress is the backend base URL; a bare host:port gets http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the session metadata storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects the session metadata store.
type DB struct {
	// DSN is a sqlite file path. Empty selects the in-memory store,
	// "nop" the no-op store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds key custody settings.
type Session struct {
	// KeyTTL is the sliding lifetime of the derived keys.
	// Env: SESSION_KEY_TTL
	KeyTTL time.Duration `env:"KEY_TTL"`

	// KDFIterations is the PBKDF2 iteration count. Never below 100000.
	// Env: SESSION_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Workers holds re-authentication monitor settings.
type Workers struct {
	// ReauthInterval is the period of the key presence check.
	// Env: WORKERS_REAUTH_INTERVAL
	ReauthInterval time.Duration `env:"REAUTH_INTERVAL"`

	// ReauthTimeout forces a logout when a re-auth request stays unanswered
	// this long. Zero disables it.
	// Env: WORKERS_REAUTH_TIMEOUT
	ReauthTimeout time.Duration `env:"REAUTH_TIMEOUT"`

	// MaxReauthAttempts is how many wrong master passwords the interactive
	// session accepts before it gives up and logs out.
	// Env: WORKERS_MAX_REAUTH_ATTEMPTS
	MaxReauthAttempts int `env:"MAX_REAUTH_ATTEMPTS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}
