package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/inventar/internal/logging"
	"github.com/Makepad-fr/inventar/internal/store"
)

// Config holds everything the composition root needs.
type Config struct {
	DataDir string
	Store   string
	Theme   string
	Logging *logging.Config
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadFromEnv reads the configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		DataDir: getEnvWithDefault("INVENTAR_DATA_DIR", "."),
		Store:   strings.ToLower(getEnvWithDefault("INVENTAR_STORE", "json")),
		Theme:   getEnvWithDefault("INVENTAR_THEME", "classic"),
		Logging: LoadLoggingConfigFromEnv(),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "warn"),
		Format: getEnvWithDefault("LOG_FORMAT", "text"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stderr"),
	}
}

// StoreConfig is the backend selection for store.Open.
func (c *Config) StoreConfig() store.Config {
	return store.Config{Kind: c.Store, Dir: c.DataDir}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
