package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates default-valued fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Addr == "" || cfg.Addr == DefaultAddr {
		if v := os.Getenv("PAGELENS_ADDR"); v != "" {
			cfg.Addr = v
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("PAGELENS_USER_AGENT")
	}
	if cfg.RequestTimeout == 0 || cfg.RequestTimeout == DefaultTimeout {
		if s := os.Getenv("PAGELENS_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil && d > 0 {
				cfg.RequestTimeout = d
			}
		}
	}
	if cfg.TopN == 0 || cfg.TopN == DefaultTopN {
		if s := os.Getenv("PAGELENS_TOP_N"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				cfg.TopN = n
			}
		}
	}
	if cfg.MaxImageBytes == 0 || cfg.MaxImageBytes == DefaultMaxImageBytes {
		if s := os.Getenv("PAGELENS_IMAGE_MAX_BYTES"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
				cfg.MaxImageBytes = n
			}
		}
	}
	if !cfg.Verbose {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				cfg.Verbose = true
			}
		}
	}
}
