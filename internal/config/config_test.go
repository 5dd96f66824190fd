package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "./data/plot.db", c.Database.Path)
	assert.Equal(t, DevJWTSecret, c.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Metrics.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  static_path: ./web
database:
  path: /var/lib/plot/plot.db
auth:
  jwt_secret: s3cret
  token_ttl: 2h
log:
  level: debug
metrics:
  enabled: false
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, c.Server.Port)
	assert.Equal(t, "./web", c.Server.StaticPath)
	assert.Equal(t, "/var/lib/plot/plot.db", c.Database.Path)
	assert.Equal(t, "s3cret", c.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, "debug", c.Log.Level)
	assert.False(t, c.Metrics.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("PLOT_SERVER_PORT", "9100")
	t.Setenv("PLOT_AUTH_JWT_SECRET", "from-env")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, c.Server.Port)
	assert.Equal(t, "from-env", c.Auth.JWTSecret)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, "server:\n  port: 70000\n"))
	assert.ErrorContains(t, err, "server.port")

	_, err = Load(writeConfig(t, "auth:\n  token_ttl: -1h\n"))
	assert.ErrorContains(t, err, "auth.token_ttl")
}
