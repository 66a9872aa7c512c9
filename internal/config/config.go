package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = "config/local.env"

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string
	Port int
	// AllowedHosts are the page hostnames trusted to choose the backend host.
	AllowedHosts []string
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// BackendConfig says how to reach the analysis backend.
type BackendConfig struct {
	// APIURL overrides base URL detection when set.
	APIURL  string
	Port    int
	Timeout time.Duration
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	Secret       string
	IdleTTL      time.Duration
	MaxSessions  int
	CookieName   string
	CookieSecure bool
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LoadEnvFile loads variables from path without overriding ones already set.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	if err := cfg.loadBackend(); err != nil {
		return nil, fmt.Errorf("load backend config: %w", err)
	}

	if err := cfg.loadSession(); err != nil {
		return nil, fmt.Errorf("load session config: %w", err)
	}

	cfg.loadLogging()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadServer() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "5173"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "127.0.0.1")

	defaultHosts := ""
	if !isWildcardHost(c.Server.Host) {
		defaultHosts = c.Server.Host
	}
	c.Server.AllowedHosts = parseList(getEnvOrDefault("ALLOWED_HOSTS", defaultHosts))
	return nil
}

func isWildcardHost(host string) bool {
	return host == "" || host == "0.0.0.0" || host == "::"
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) loadBackend() error {
	c.Backend.APIURL = strings.TrimSpace(os.Getenv("BACKEND_API_URL"))

	port, err := strconv.Atoi(getEnvOrDefault("BACKEND_PORT", "5000"))
	if err != nil {
		return fmt.Errorf("invalid BACKEND_PORT: %w", err)
	}
	c.Backend.Port = port

	timeout, err := time.ParseDuration(getEnvOrDefault("BACKEND_TIMEOUT", "0s"))
	if err != nil {
		return fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}
	c.Backend.Timeout = timeout
	return nil
}

func (c *Config) loadSession() error {
	c.Session.Secret = os.Getenv("SESSION_SECRET")
	c.Session.CookieName = getEnvOrDefault("SESSION_COOKIE_NAME", "hm_session")

	ttl, err := time.ParseDuration(getEnvOrDefault("SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_IDLE_TTL: %w", err)
	}
	c.Session.IdleTTL = ttl

	maxSessions, err := strconv.Atoi(getEnvOrDefault("SESSION_MAX", "10000"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_MAX: %w", err)
	}
	c.Session.MaxSessions = maxSessions

	secure, err := strconv.ParseBool(getEnvOrDefault("SESSION_COOKIE_SECURE", "false"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}
	c.Session.CookieSecure = secure
	return nil
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	if c.Backend.APIURL == "" && (c.Backend.Port < 1 || c.Backend.Port > 65535) {
		errors = append(errors, "BACKEND_PORT must be between 1 and 65535")
	}
	if c.Backend.APIURL != "" && !strings.HasPrefix(c.Backend.APIURL, "http://") && !strings.HasPrefix(c.Backend.APIURL, "https://") {
		errors = append(errors, "BACKEND_API_URL must start with http:// or https://")
	}
	if c.Backend.Timeout < 0 {
		errors = append(errors, "BACKEND_TIMEOUT must not be negative")
	}

	if c.Session.Secret == "" {
		errors = append(errors, "SESSION_SECRET is required")
	}
	if len(c.Session.Secret) < 16 {
		errors = append(errors, "SESSION_SECRET must be at least 16 characters")
	}
	if c.Session.IdleTTL <= 0 {
		errors = append(errors, "SESSION_IDLE_TTL must be positive")
	}
	if c.Session.MaxSessions < 1 {
		errors = append(errors, "SESSION_MAX must be positive")
	}
	if c.Session.CookieName == "" {
		errors = append(errors, "SESSION_COOKIE_NAME must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(os.Getenv("ENV"))
	return env == "" || env == "development"
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
