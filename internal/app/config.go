package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Addr is the HTTP UI listen address.
	Addr string

	// Fetching
	UserAgent      string
	RequestTimeout time.Duration
	MaxPageBytes   int64
	MaxImageBytes  int64

	// Analysis
	TopN int

	// Behavior
	Verbose bool
}

// Defaults for flag parsing and config overlays.
const (
	DefaultAddr          = "127.0.0.1:8040"
	DefaultTimeout       = 30 * time.Second
	DefaultTopN          = 20
	DefaultMaxPageBytes  = 8 << 20 // 8 MiB
	DefaultMaxImageBytes = 4 << 20 // 4 MiB
)

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Addr:           DefaultAddr,
		RequestTimeout: DefaultTimeout,
		TopN:           DefaultTopN,
		MaxPageBytes:   DefaultMaxPageBytes,
		MaxImageBytes:  DefaultMaxImageBytes,
	}
}
