package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("OIDC_DOMAIN", "")
	t.Setenv("OIDC_CLIENT_ID", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.False(t, cfg.OIDC.Enabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "STORAGE_DRIVER=MEMORY\nUSE_HTTPS=true\nOIDC_DOMAIN=login.example.com\nOIDC_CLIENT_ID=toolkit\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv never overrides variables that are already set
	for _, key := range []string{"STORAGE_DRIVER", "USE_HTTPS", "OIDC_DOMAIN", "OIDC_CLIENT_ID"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.UseHTTPS)
	assert.True(t, cfg.OIDC.Enabled())
}

func TestGetEnvBoolFallback(t *testing.T) {
	t.Setenv("TOOLKIT_FLAG", "not-a-bool")
	assert.True(t, getEnvBool("TOOLKIT_FLAG", true))

	t.Setenv("TOOLKIT_FLAG", "false")
	assert.False(t, getEnvBool("TOOLKIT_FLAG", true))
}
