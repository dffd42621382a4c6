package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BARANGAY_HTTP_ADDR", "")
	t.Setenv("BARANGAY_LOG_LEVEL", "")
	t.Setenv("BARANGAY_KV_ADDR", "")
	t.Setenv("BARANGAY_KV_TOKEN", "")
	t.Setenv("BARANGAY_ADMIN_TOKEN", "")

	cfg := loadConfig()
	require.Equal(t, defaultHTTPAddr, cfg.HTTPAddr)
	require.Equal(t, defaultLogLevel, cfg.LogLevel)
	require.False(t, cfg.KVConfigured())
	require.Empty(t, cfg.AdminToken)
}

func TestKVConfiguredRequiresBothValues(t *testing.T) {
	t.Setenv("BARANGAY_KV_ADDR", "localhost:6379")
	t.Setenv("BARANGAY_KV_TOKEN", "")
	require.False(t, loadConfig().KVConfigured())

	t.Setenv("BARANGAY_KV_ADDR", "")
	t.Setenv("BARANGAY_KV_TOKEN", "secret")
	require.False(t, loadConfig().KVConfigured())

	t.Setenv("BARANGAY_KV_ADDR", "localhost:6379")
	require.True(t, loadConfig().KVConfigured())
}

func TestLoadConfigNormalizesValues(t *testing.T) {
	t.Setenv("BARANGAY_LOG_LEVEL", " DEBUG ")
	t.Setenv("BARANGAY_KV_ADDR", " localhost:6379 ")

	cfg := loadConfig()
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "localhost:6379", cfg.KVAddr)
}
