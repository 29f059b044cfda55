package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PDGID_OUTPUT", "PDGID_NO_COLOR", "NO_COLOR", "PDGID_LOG_LEVEL",
		"PDGID_SCAN_WORKERS", "PDGID_SCAN_LIMIT", "PDGID_SELFTEST_SAMPLES",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestEnvDefaults(t *testing.T) {
	clearEnv(t)
	ResetEnv()
	defer ResetEnv()

	e, err := Env()
	require.NoError(t, err)

	assert.Equal(t, OutputText, e.Output)
	assert.Equal(t, "warn", e.LogLevel)
	assert.Equal(t, 4, e.ScanWorkers)
	assert.Equal(t, int64(10_000_000), e.ScanLimit)
	assert.Equal(t, 20000, e.SelftestSamples)
	assert.False(t, e.ColorDisabled())
}

func TestEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDGID_OUTPUT", "JSON")
	t.Setenv("PDGID_LOG_LEVEL", "debug")
	t.Setenv("PDGID_SCAN_WORKERS", "8")
	t.Setenv("PDGID_SCAN_LIMIT", "500")
	ResetEnv()
	defer ResetEnv()

	e, err := Env()
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, e.Output)
	assert.Equal(t, "debug", e.LogLevel)
	assert.Equal(t, 8, e.ScanWorkers)
	assert.Equal(t, int64(500), e.ScanLimit)
}

func TestEnvSingleton(t *testing.T) {
	clearEnv(t)
	ResetEnv()
	defer ResetEnv()

	env1, err := Env()
	require.NoError(t, err)
	env2, err := Env()
	require.NoError(t, err)

	assert.Same(t, env1, env2)
}

func TestResetEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PDGID_OUTPUT", "yaml")
	ResetEnv()
	env1, err := Env()
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, env1.Output)

	t.Setenv("PDGID_OUTPUT", "text")
	ResetEnv()
	defer ResetEnv()

	env2, err := Env()
	require.NoError(t, err)
	assert.Equal(t, OutputText, env2.Output)
}

func TestColorDisabled(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"pdgid switch", "PDGID_NO_COLOR", "true"},
		{"no_color convention", "NO_COLOR", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			e, err := Load()
			require.NoError(t, err)
			assert.True(t, e.ColorDisabled())
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown output", "PDGID_OUTPUT", "xml"},
		{"zero workers", "PDGID_SCAN_WORKERS", "0"},
		{"non-numeric workers", "PDGID_SCAN_WORKERS", "many"},
		{"zero limit", "PDGID_SCAN_LIMIT", "0"},
		{"negative samples", "PDGID_SELFTEST_SAMPLES", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, ValidateOutput("text"))
	assert.NoError(t, ValidateOutput("YAML"))
	assert.Error(t, ValidateOutput(""))
}
