package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PCODE_PROFILE_DIR", "PCODE_SSH_BINARY", "PCODE_SSH_OPTIONS",
		"PCODE_THEME", "PCODE_LOG_FILE", "PCODE_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg := fromEnv(home)

	assert.Equal(t, filepath.Join(home, "pcode-cli", "docker"), cfg.ProfileDir)
	assert.Equal(t, filepath.Join(home, "pcode-cli", "pcode.log"), cfg.LogFile)
	assert.Equal(t, "ssh", cfg.SSHBinary)
	assert.Equal(t, []string{"BatchMode=yes"}, cfg.SSHOptions)
	assert.Equal(t, "dark", cfg.Theme)
	assert.False(t, cfg.Debug)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("PCODE_PROFILE_DIR", "~/profiles")
	t.Setenv("PCODE_SSH_OPTIONS", "BatchMode=yes, ConnectTimeout=5 ,")
	t.Setenv("PCODE_THEME", "light")
	t.Setenv("PCODE_DEBUG", "true")

	cfg := fromEnv(home)

	assert.Equal(t, filepath.Join(home, "profiles"), cfg.ProfileDir)
	assert.Equal(t, []string{"BatchMode=yes", "ConnectTimeout=5"}, cfg.SSHOptions)
	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	cfg := &Config{ProfileDir: "/tmp/p", SSHBinary: "ssh", Theme: "dark"}
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Theme = "neon"
	assert.ErrorContains(t, bad.Validate(), "PCODE_THEME")

	bad = *cfg
	bad.ProfileDir = " "
	assert.ErrorContains(t, bad.Validate(), "PCODE_PROFILE_DIR")

	bad = *cfg
	bad.SSHBinary = ""
	assert.ErrorContains(t, bad.Validate(), "PCODE_SSH_BINARY")
}
