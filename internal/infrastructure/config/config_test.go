package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCleanEnv unsets the given variables for the duration of the test and restores them afterwards
func withCleanEnv(t *testing.T, keys ...string) func() {
	t.Helper()
	original := make(map[string]string, len(keys))
	for _, k := range keys {
		original[k] = os.Getenv(k)
	}
	t.Cleanup(func() {
		for k, v := range original {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	})
	return func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	}
}

func TestLoad(t *testing.T) {
	clearEnv := withCleanEnv(t,
		"ARGOS_APP_NAME",
		"ARGOS_APP_ENV",
		"ARGOS_APP_PORT",
		"ARGOS_DATABASE_HOST",
		"ARGOS_DATABASE_PORT",
		"ARGOS_DATABASE_USER",
		"ARGOS_DATABASE_PASSWORD",
		"ARGOS_DATABASE_DBNAME",
		"ARGOS_DATABASE_SSLMODE",
		"ARGOS_DATABASE_MAX_OPEN_CONNS",
		"ARGOS_DATABASE_MAX_IDLE_CONNS",
		"ARGOS_JWT_SECRET",
		"ARGOS_JWT_ACCESS_TOKEN_EXPIRATION",
		"ARGOS_REDIS_ENABLED",
		"ARGOS_STORAGE_ENABLED",
		"ARGOS_STORAGE_BUCKET",
		"ARGOS_MAIL_ENABLED",
		"ARGOS_MAIL_HOST",
	)

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "argos-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "argos", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
		assert.Equal(t, int64(2<<20), cfg.HTTP.MaxBodySize)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
		assert.Equal(t, 587, cfg.Mail.Port)
	})

	t.Run("loads values from environment variables with ARGOS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_APP_NAME", "test-app")
		os.Setenv("ARGOS_APP_ENV", "testing")
		os.Setenv("ARGOS_APP_PORT", "9000")
		os.Setenv("ARGOS_DATABASE_HOST", "testdb.local")
		os.Setenv("ARGOS_DATABASE_PORT", "5433")
		os.Setenv("ARGOS_DATABASE_USER", "testuser")
		os.Setenv("ARGOS_DATABASE_PASSWORD", "testpass")
		os.Setenv("ARGOS_DATABASE_DBNAME", "testdb")
		os.Setenv("ARGOS_DATABASE_SSLMODE", "require")
		os.Setenv("ARGOS_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("ARGOS_DATABASE_MAX_IDLE_CONNS", "10")
		os.Setenv("ARGOS_REDIS_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.True(t, cfg.Redis.Enabled)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("ARGOS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("access token must outlive refresh token", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_JWT_ACCESS_TOKEN_EXPIRATION", "200h")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.access_token_expiration")
	})

	t.Run("storage requires a bucket when enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_STORAGE_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.bucket")

		os.Setenv("ARGOS_STORAGE_BUCKET", "argos-reports")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "argos-reports", cfg.Storage.Bucket)
	})

	t.Run("mail requires a host when enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("ARGOS_MAIL_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mail.host")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	clearEnv := withCleanEnv(t,
		"ARGOS_APP_ENV",
		"ARGOS_JWT_SECRET",
		"ARGOS_DATABASE_PASSWORD",
		"ARGOS_DATABASE_SSLMODE",
		"ARGOS_HTTP_CORS_ALLOW_ORIGINS",
	)

	setValidProductionBase := func() {
		os.Setenv("ARGOS_APP_ENV", "production")
		os.Setenv("ARGOS_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("ARGOS_DATABASE_PASSWORD", "secure-password")
		os.Setenv("ARGOS_DATABASE_SSLMODE", "require")
	}

	t.Run("rejects the development jwt secret in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("ARGOS_JWT_SECRET")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be set in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("ARGOS_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Unsetenv("ARGOS_DATABASE_PASSWORD")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("ARGOS_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects wildcard CORS in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("ARGOS_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.App.IsProduction())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})

	t.Run("handles empty password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "user",
			DBName:  "db",
			SSLMode: "disable",
		}

		assert.NotEmpty(t, cfg.DSN())
	})
}
