package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("LABEL_WIDTH_MM", "58")
	defer os.Unsetenv("LABEL_WIDTH_MM")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 58.0, cfg.Label.WidthMm)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LABEL_WIDTH_MM", "LABEL_HEIGHT_MM", "LABEL_DPI", "LABEL_DENSITY", "SPOOL_DIR"} {
		orig := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, orig)
	}

	cfg := Load()

	assert.Equal(t, "8520", cfg.Port)
	assert.Equal(t, 50.0, cfg.Label.WidthMm)
	assert.Equal(t, 40.0, cfg.Label.HeightMm)
	assert.Equal(t, 203, cfg.Label.DPI)
	assert.Equal(t, 8, cfg.Label.Density)
	assert.Equal(t, "./spool", cfg.Spool.Dir)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	os.Setenv(key, "2.5")
	assert.Equal(t, 2.5, getEnvFloat(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 1.5, getEnvFloat(key, 1.5))

	os.Unsetenv(key)
	assert.Equal(t, 1.5, getEnvFloat(key, 1.5))
}
