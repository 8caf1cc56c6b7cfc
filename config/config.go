package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port             string
	StorageDriver    string
	DBPath           string
	StorageNamespace string
	LogLevel         string
	LogFormat        string
	UseHTTPS         bool
	PolicyFile       string
	OIDC             OIDCConfig
}

// OIDCConfig holds the back-office login provider settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether enough settings are present to use the provider
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != ""
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error; a malformed one is.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		StorageDriver:    strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		DBPath:           getEnv("DB_PATH", "privacy_toolkit.db"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "default"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		UseHTTPS:         getEnvBool("USE_HTTPS", false),
		PolicyFile:       getEnv("POLICY_FILE", ""),
		OIDC: OIDCConfig{
			Domain:       getEnv("OIDC_DOMAIN", ""),
			ClientID:     getEnv("OIDC_CLIENT_ID", ""),
			ClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("OIDC_CALLBACK_URL", ""),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
