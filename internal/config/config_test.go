package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"HOST", "PORT", "ALLOWED_HOSTS", "BACKEND_API_URL", "BACKEND_PORT", "BACKEND_TIMEOUT",
	"SESSION_SECRET", "SESSION_IDLE_TTL", "SESSION_MAX", "SESSION_COOKIE_NAME", "SESSION_COOKIE_SECURE",
	"LOG_LEVEL", "LOG_FORMAT", "ENV",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5173", cfg.Server.Addr())
	assert.Equal(t, []string{"127.0.0.1"}, cfg.Server.AllowedHosts)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Empty(t, cfg.Backend.APIURL)
	assert.Equal(t, 5000, cfg.Backend.Port)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, "hm_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.CookieSecure)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("BACKEND_API_URL", "https://api.example.com/api")
	t.Setenv("BACKEND_TIMEOUT", "15s")
	t.Setenv("SESSION_SECRET", "a-very-long-session-secret")
	t.Setenv("SESSION_IDLE_TTL", "2h")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Empty(t, cfg.Server.AllowedHosts, "a wildcard listen address trusts no extra host")
	assert.Equal(t, "https://api.example.com/api", cfg.Backend.APIURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.True(t, cfg.Session.CookieSecure)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadAllowedHosts(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "0123456789abcdef")
	t.Setenv("ALLOWED_HOSTS", " moods.example.com, ,192.168.1.20 ")
	t.Setenv("SESSION_MAX", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"moods.example.com", "192.168.1.20"}, cfg.Server.AllowedHosts)
	assert.Equal(t, 50, cfg.Session.MaxSessions)
}

func TestLoadParseErrors(t *testing.T) {
	for key, value := range map[string]string{
		"PORT":                  "http",
		"BACKEND_PORT":          "five",
		"BACKEND_TIMEOUT":       "soon",
		"SESSION_IDLE_TTL":      "forever",
		"SESSION_COOKIE_SECURE": "maybe",
		"SESSION_MAX":           "lots",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SESSION_SECRET", "0123456789abcdef")
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 0},
		Backend: BackendConfig{APIURL: "ftp://nope", Timeout: -time.Second},
		Session: SessionConfig{Secret: "short"},
		Logging: LoggingConfig{Level: "trace", Format: "xml"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"PORT must be between 1 and 65535",
		"BACKEND_API_URL must start with http:// or https://",
		"BACKEND_TIMEOUT must not be negative",
		"SESSION_SECRET must be at least 16 characters",
		"SESSION_IDLE_TTL must be positive",
		"SESSION_COOKIE_NAME must not be empty",
		"LOG_LEVEL must be one of",
		"LOG_FORMAT must be one of",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateRequiresSecret(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("BACKEND_PORT"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BACKEND_PORT=5050\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { _ = os.Unsetenv("BACKEND_PORT") })
	assert.Equal(t, "5050", os.Getenv("BACKEND_PORT"))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
