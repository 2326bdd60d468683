package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("TOKEN_EXPIRY", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("SMTP_HOST", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongo", cfg.StorageDriver)
	assert.Equal(t, 72*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("TOKEN_EXPIRY", "15m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("APP_BASE_URL", "https://tasks.example.com/")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "https://tasks.example.com", cfg.AppBaseURL)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestLoadConfigBadExpiry(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "forever")

	cfg := LoadConfig()

	assert.Equal(t, 72*time.Hour, cfg.TokenExpiry)
}

func warnings(hook *logtest.Hook) []string {
	var out []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			out = append(out, entry.Message)
		}
	}
	return out
}

func TestLoadConfigWarnsOnDefaultSecret(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Contains(t, warnings(hook), "JWT_SECRET not set, using the insecure default secret")
}

func TestLoadConfigCustomSecretDoesNotWarn(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := LoadConfig()

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.NotContains(t, warnings(hook), "JWT_SECRET not set, using the insecure default secret")
}

func TestLoadConfigTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	assert.Equal(t, time.UTC, LoadConfig().Location)

	t.Setenv("TIMEZONE", "Asia/Almaty")
	cfg := LoadConfig()
	require.NotNil(t, cfg.Location)
	assert.Equal(t, "Asia/Almaty", cfg.Location.String())

	t.Setenv("TIMEZONE", "Mars/Olympus")
	assert.Equal(t, time.UTC, LoadConfig().Location)
}
