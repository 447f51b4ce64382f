package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADSTUDIO_AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, 10*time.Second, cfg.Auth.ExchangeTimeout)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.False(t, cfg.Storage.IsS3())
	assert.True(t, cfg.Storage.FallbackToFilesystem)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
auth:
  jwt_secret: file-secret
  token_lifetime: 1h
  cookie_secure: true
database:
  host: db.internal
  dbname: adstudio_test
storage:
  type: s3
  s3_bucket: media
  s3_region: eu-west-1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Storage.IsS3())
	assert.Contains(t, cfg.Database.DSN(), "dbname=adstudio_test")
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	t.Setenv("ADSTUDIO_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("ADSTUDIO_STORAGE_TYPE", "s3")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3_bucket")
}
