package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Profile storage
	ProfileDir string

	// SSH Configuration
	SSHBinary  string
	SSHOptions []string

	// UI Configuration
	Theme string

	// Logging
	LogFile string
	Debug   bool
}

// Load reads configuration from environment and .env file
func Load() (*Config, error) {
	// A missing .env is fine; the environment and defaults still apply
	_ = godotenv.Load(".env")

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	return fromEnv(home), nil
}

func fromEnv(home string) *Config {
	profileDir := expandHome(getEnvDefault("PCODE_PROFILE_DIR", filepath.Join(home, "pcode-cli", "docker")), home)

	cfg := &Config{
		ProfileDir: profileDir,
		SSHBinary:  getEnvDefault("PCODE_SSH_BINARY", "ssh"),
		SSHOptions: splitList(getEnvDefault("PCODE_SSH_OPTIONS", "BatchMode=yes")),
		Theme:      getEnvDefault("PCODE_THEME", "dark"),
		LogFile:    expandHome(getEnvDefault("PCODE_LOG_FILE", filepath.Join(filepath.Dir(profileDir), "pcode.log")), home),
		Debug:      getEnvBool("PCODE_DEBUG"),
	}
	return cfg
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProfileDir) == "" {
		return fmt.Errorf("PCODE_PROFILE_DIR is required")
	}
	if strings.TrimSpace(c.SSHBinary) == "" {
		return fmt.Errorf("PCODE_SSH_BINARY must not be empty")
	}
	switch c.Theme {
	case "dark", "light", "minimal":
	default:
		return fmt.Errorf("PCODE_THEME %q is not one of dark, light, minimal", c.Theme)
	}
	return nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// expandHome expands a leading "~/" against home
func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
