package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("FOODTRACKER_ENV", "test")
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, filepath.Join("data", "foodtracker.db"), cfg.Database.Path)
	assert.Equal(t, "restrict", cfg.Accounts.DeletePolicy)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("FOODTRACKER_SERVER__PORT", "9090")
	t.Setenv("FOODTRACKER_DATABASE__PATH", "/tmp/pantry.db")
	t.Setenv("FOODTRACKER_DATABASE__MAX_OPEN_CONNS", "4")
	t.Setenv("FOODTRACKER_AUTH__JWT_SECRET", "test-secret")
	t.Setenv("FOODTRACKER_REDIS__URL", "redis://localhost:6379/0")
	t.Setenv("FOODTRACKER_ACCOUNTS__DELETE_POLICY", "cascade")
	t.Setenv("FOODTRACKER_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/pantry.db", cfg.Database.Path)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "cascade", cfg.Accounts.DeletePolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins())
}

func TestLoadConfigRejectsUnknownPolicy(t *testing.T) {
	isolateEnv(t)
	t.Setenv("FOODTRACKER_ACCOUNTS__DELETE_POLICY", "shred")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DeletePolicy")
}

func TestLoadConfigPostgresNeedsDSN(t *testing.T) {
	isolateEnv(t)
	t.Setenv("FOODTRACKER_DATABASE__DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestProductionSecretFromSecretsDir(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("FOODTRACKER_ENV", "production")

	_, err := Load()
	assert.Error(t, err, "production without a secret must fail")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-file\n"), 0o600))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Development, ParseEnvironment(""))
	assert.Equal(t, Development, ParseEnvironment("staging"))
}
