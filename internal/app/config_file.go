package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// duration parses "10s" style values from YAML and JSON, which the
// decoders do not do for time.Duration on their own.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally onto flags and env vars.
type FileConfig struct {
	Listen string `yaml:"listen" json:"listen"`

	HTTP struct {
		UserAgent string   `yaml:"userAgent" json:"userAgent"`
		Timeout   duration `yaml:"timeout" json:"timeout"`
		MaxPageKB int64    `yaml:"maxPageKB" json:"maxPageKB"`
	} `yaml:"http" json:"http"`

	Analysis struct {
		TopN int `yaml:"topN" json:"topN"`
	} `yaml:"analysis" json:"analysis"`

	Images struct {
		MaxKB int64 `yaml:"maxKB" json:"maxKB"`
	} `yaml:"images" json:"images"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields that
// still hold their defaults. Flags should already have been parsed; file
// config supplies defaults without overriding explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.Addr == "" || cfg.Addr == DefaultAddr) && fc.Listen != "" {
		cfg.Addr = fc.Listen
	}
	if cfg.UserAgent == "" && fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if (cfg.RequestTimeout == 0 || cfg.RequestTimeout == DefaultTimeout) && fc.HTTP.Timeout > 0 {
		cfg.RequestTimeout = time.Duration(fc.HTTP.Timeout)
	}
	if (cfg.MaxPageBytes == 0 || cfg.MaxPageBytes == DefaultMaxPageBytes) && fc.HTTP.MaxPageKB > 0 {
		cfg.MaxPageBytes = fc.HTTP.MaxPageKB << 10
	}
	if (cfg.TopN == 0 || cfg.TopN == DefaultTopN) && fc.Analysis.TopN > 0 {
		cfg.TopN = fc.Analysis.TopN
	}
	if (cfg.MaxImageBytes == 0 || cfg.MaxImageBytes == DefaultMaxImageBytes) && fc.Images.MaxKB > 0 {
		cfg.MaxImageBytes = fc.Images.MaxKB << 10
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	if cfg.Addr == "" {
		return errors.New("config: listen address is required")
	}
	if cfg.TopN <= 0 {
		return errors.New("config: analysis.topN must be positive")
	}
	if cfg.RequestTimeout < 0 || cfg.MaxPageBytes < 0 || cfg.MaxImageBytes < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
