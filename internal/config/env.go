// Package config provides centralized configuration for the pdgid CLI.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Output formats accepted by PDGID_OUTPUT and --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// CLIEnv holds all pdgid environment variables.
type CLIEnv struct {
	// Output is the default output format (PDGID_OUTPUT)
	Output string `env:"PDGID_OUTPUT" envDefault:"text"`

	// NoColor disables coloured output (PDGID_NO_COLOR)
	NoColor bool `env:"PDGID_NO_COLOR"`

	// NoColorStd honours the cross-tool NO_COLOR convention
	NoColorStd string `env:"NO_COLOR"`

	// LogLevel filters structured log events (PDGID_LOG_LEVEL)
	LogLevel string `env:"PDGID_LOG_LEVEL" envDefault:"warn"`

	// ScanWorkers is the number of parallel scan workers (PDGID_SCAN_WORKERS)
	ScanWorkers int `env:"PDGID_SCAN_WORKERS" envDefault:"4"`

	// ScanLimit is the widest interval a scan accepts (PDGID_SCAN_LIMIT)
	ScanLimit int64 `env:"PDGID_SCAN_LIMIT" envDefault:"10000000"`

	// SelftestSamples is the sample size for random selftest checks (PDGID_SELFTEST_SAMPLES)
	SelftestSamples int `env:"PDGID_SELFTEST_SAMPLES" envDefault:"20000"`
}

// ColorDisabled reports whether either colour switch is set.
func (e *CLIEnv) ColorDisabled() bool {
	return e.NoColor || e.NoColorStd != ""
}

// Validate checks value ranges that env tags cannot express.
func (e *CLIEnv) Validate() error {
	if err := ValidateOutput(e.Output); err != nil {
		return err
	}
	if e.ScanWorkers < 1 {
		return fmt.Errorf("PDGID_SCAN_WORKERS must be positive, got %d", e.ScanWorkers)
	}
	if e.ScanLimit < 1 {
		return fmt.Errorf("PDGID_SCAN_LIMIT must be positive, got %d", e.ScanLimit)
	}
	if e.SelftestSamples < 0 {
		return fmt.Errorf("PDGID_SELFTEST_SAMPLES must not be negative, got %d", e.SelftestSamples)
	}
	return nil
}

// ValidateOutput rejects unknown output formats.
func ValidateOutput(format string) error {
	switch strings.ToLower(format) {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// Load parses and validates the environment without caching.
func Load() (*CLIEnv, error) {
	var e CLIEnv
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	e.Output = strings.ToLower(e.Output)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

var (
	cached  *CLIEnv
	loadErr error
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() (*CLIEnv, error) {
	envOnce.Do(func() {
		cached, loadErr = Load()
	})
	return cached, loadErr
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	cached = nil
	loadErr = nil
}
