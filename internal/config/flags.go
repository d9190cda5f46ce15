package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the configuration flags bound to a pflag.FlagSet. Values are
// read after the set is parsed.
type Flags struct {
	httpAddress       string
	requestTimeout    time.Duration
	databaseDSN       string
	keyTTL            time.Duration
	kdfIterations     int
	reauthInterval    time.Duration
	reauthTimeout     time.Duration
	maxReauthAttempts int
	logLevel          string
	jsonConfigPath    string
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-a/--address            backend address, host:port or URL
//	--request-timeout       request timeout (e.g., "30s", "1m")
//	-d/--dsn                session store sqlite file, empty for memory, "nop" for none
//	--key-ttl               sliding key lifetime (e.g., "15m")
//	--kdf-iterations        PBKDF2 iterations
//	--reauth-interval       key presence check period
//	--reauth-timeout        unanswered re-auth request timeout, 0 disables
//	--max-reauth-attempts   wrong master passwords accepted before logout
//	--log-level             zerolog level
//	-c/--config             json file path with configs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.httpAddress, "address", "a", "", "Backend address host:port or URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Session store sqlite file (empty: memory, nop: none)")
	fs.DurationVar(&f.keyTTL, "key-ttl", 0, "Sliding lifetime of derived keys")
	fs.IntVar(&f.kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations")
	fs.DurationVar(&f.reauthInterval, "reauth-interval", 0, "Key presence check period")
	fs.DurationVar(&f.reauthTimeout, "reauth-timeout", 0, "Re-auth request timeout, 0 disables")
	fs.IntVar(&f.maxReauthAttempts, "max-reauth-attempts", 0, "Wrong master passwords accepted before logout")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")

	return f
}

// ParseFlags binds the configuration flags to a fresh FlagSet and parses
// args into it.
func ParseFlags(args []string) (*Flags, error) {
	fs := pflag.NewFlagSet("go-pass-owl", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    f.httpAddress,
			RequestTimeout: f.requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
		},
		Session: Session{
			KeyTTL:        f.keyTTL,
			KDFIterations: f.kdfIterations,
		},
		Workers: Workers{
			ReauthInterval:    f.reauthInterval,
			ReauthTimeout:     f.reauthTimeout,
			MaxReauthAttempts: f.maxReauthAttempts,
		},
		Log:          Log{Level: f.logLevel},
		JSONFilePath: f.jsonConfigPath,
	}
}
