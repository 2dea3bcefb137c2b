package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "STORE", "APP_SECRET", "JWT_SECRET", "JWT_EXPIRY_HOURS", "BCRYPT_COST", "AMQP_URL", "DB_NAME"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "5005", cfg.Port)
	require.Equal(t, "postgres", cfg.Store)
	require.Equal(t, defaultSecret, cfg.AppSecret)
	require.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	require.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	require.Empty(t, cfg.AMQPURL)
	require.Contains(t, cfg.DatabaseURL, "/moviestore?sslmode=disable")
	require.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_SECRET", "")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("BCRYPT_COST", "5")
	t.Setenv("STORE", "memory")
	cfg := Load()

	require.True(t, cfg.IsProduction())
	require.Equal(t, "jwt-secret", cfg.AppSecret)
	require.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	require.Equal(t, 5, cfg.BcryptCost)
	require.Equal(t, "memory", cfg.Store)
}

func TestLoad_InvalidBcryptCostFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")
	require.Equal(t, bcrypt.DefaultCost, Load().BcryptCost)
}
