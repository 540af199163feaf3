package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	origEndpoint := os.Getenv("MINIO_ENDPOINT")
	defer os.Setenv("MINIO_ENDPOINT", origEndpoint)

	os.Setenv("MINIO_ENDPOINT", "test-host:9000")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("DOC_SKIP_CORRUPT_METADATA", "true")
	defer os.Unsetenv("MINIO_USE_SSL")
	defer os.Unsetenv("DOC_SKIP_CORRUPT_METADATA")

	cfg := Load()

	assert.Equal(t, "test-host:9000", cfg.MinIO.Endpoint)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.Documents.SkipCorruptMetadata)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DOC_SKIP_CORRUPT_METADATA")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Documents.SkipCorruptMetadata)
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
