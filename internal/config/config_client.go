package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file, "" for memory or "nop".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSession holds key custody settings.
type ClientSession struct {
	KeyTTL        time.Duration
	KDFIterations int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	ReauthInterval    time.Duration
	ReauthTimeout     time.Duration
	MaxReauthAttempts int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Session contains key lifetime and derivation cost.
	Session ClientSession
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flags may be nil when no command line is
// involved.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	cfg.applyDefaults()

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Session: ClientSession{
			KeyTTL:        cfg.Session.KeyTTL,
			KDFIterations: cfg.Session.KDFIterations,
		},
		Workers: ClientWorkers{
			ReauthInterval:    cfg.Workers.ReauthInterval,
			ReauthTimeout:     cfg.Workers.ReauthTimeout,
			MaxReauthAttempts: cfg.Workers.MaxReauthAttempts,
		},
		LogLevel: cfg.Log.Level,
	}

	return clientCfg, clientCfg.validate()
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Session.KeyTTL == 0 {
		cfg.Session.KeyTTL = DefaultKeyTTL
	}
	if cfg.Session.KDFIterations == 0 {
		cfg.Session.KDFIterations = DefaultKDFIterations
	}
	if cfg.Workers.ReauthInterval == 0 {
		cfg.Workers.ReauthInterval = DefaultReauthInterval
	}
	if cfg.Workers.MaxReauthAttempts == 0 {
		cfg.Workers.MaxReauthAttempts = DefaultMaxReauthAttempts
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
