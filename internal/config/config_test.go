package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDevDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DEV_DB_HOST", "localhost")
	t.Setenv("DEV_DB_USER", "root")
	t.Setenv("DEV_DB_NAME", "luxpackers")
}

func TestLoadFailsWithoutDatabaseConfig(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DEV_DB_HOST", "")
	t.Setenv("DEV_DB_USER", "")
	t.Setenv("DEV_DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEV_DB_HOST")
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_MODE")
}

func TestLoadDefaults(t *testing.T) {
	setDevDatabaseEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("ACCESS_TOKEN_MINUTES", "")
	t.Setenv("SESSION_IDLE_TTL_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 480, cfg.JWT.AccessTokenMins)
	assert.Equal(t, 7, cfg.Session.IdleTTLDays)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoadProdUsesProdPrefix(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_USER", "svc")
	t.Setenv("PROD_DB_NAME", "luxpackers")
	t.Setenv("PROD_JWT_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "https://admin.luxpackers.com", cfg.GetAllowedOrigins())
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: "3306", User: "root", Password: "pw", DBName: "luxpackers"}
	assert.Equal(t,
		"root:pw@tcp(localhost:3306)/luxpackers?charset=utf8mb4&parseTime=True&loc=Local",
		d.DSN())
}

func TestSessionTTLFloor(t *testing.T) {
	setDevDatabaseEnv(t)
	t.Setenv("SESSION_IDLE_TTL_DAYS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Session.IdleTTLDays)
}
