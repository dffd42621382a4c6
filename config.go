package main

import (
	"os"
	"strings"
)

const (
	defaultHTTPAddr = ":8080"
	defaultLogLevel = "info"
)

// Config holds portal runtime configuration.
type Config struct {
	HTTPAddr string
	LogLevel string

	// KVAddr and KVToken configure the durable key-value backend. Both must
	// be present for the backend to activate; running without one is the
	// supported memory-only mode, not an error.
	KVAddr  string
	KVToken string

	// AdminToken is the shared admin credential. Empty disables admin auth,
	// leaving the management endpoints open (local/dev mode).
	AdminToken string
}

// loadConfig returns configuration parsed from environment variables.
func loadConfig() Config {
	return Config{
		HTTPAddr:   envOrDefault("BARANGAY_HTTP_ADDR", defaultHTTPAddr),
		LogLevel:   strings.ToLower(strings.TrimSpace(envOrDefault("BARANGAY_LOG_LEVEL", defaultLogLevel))),
		KVAddr:     strings.TrimSpace(os.Getenv("BARANGAY_KV_ADDR")),
		KVToken:    strings.TrimSpace(os.Getenv("BARANGAY_KV_TOKEN")),
		AdminToken: strings.TrimSpace(os.Getenv("BARANGAY_ADMIN_TOKEN")),
	}
}

// KVConfigured reports whether both durable-backend values are present.
// It is a pure configuration check and never touches the network.
func (c Config) KVConfigured() bool {
	return c.KVAddr != "" && c.KVToken != ""
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
