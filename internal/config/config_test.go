package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.True(t, cfg.PipelineEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "impact-scenarios", cfg.KafkaSourceTopic)
	assert.Equal(t, "impact-reports", cfg.KafkaSinkTopic)
	assert.Equal(t, "impact-sim", cfg.KafkaGroupID)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)

	assert.Equal(t, "DEMO_KEY", cfg.NEOAPIKey)
	assert.Equal(t, "https://api.nasa.gov/neo/rest/v1", cfg.NEOBaseURL)
	assert.Equal(t, 10*time.Second, cfg.NEOTimeout)
	assert.Equal(t, 1.0, cfg.NEORatePerSec)
	assert.Equal(t, 500, cfg.NEOCacheSize)

	assert.Empty(t, cfg.SimBackendURL)
	assert.Equal(t, 15*time.Second, cfg.SimBackendTimeout)
	assert.Equal(t, 6.371, cfg.PlanetRadiusUnits)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("NEO_API_KEY", "abc123")
	t.Setenv("NEO_BASE_URL", "http://neo.local/v1")
	t.Setenv("NEO_TIMEOUT", "3s")
	t.Setenv("NEO_RATE_PER_SEC", "2.5")
	t.Setenv("NEO_CACHE_SIZE", "42")
	t.Setenv("SIM_BACKEND_URL", "http://backend:5000")
	t.Setenv("SIM_BACKEND_TIMEOUT", "20s")
	t.Setenv("PLANET_RADIUS_UNITS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, "abc123", cfg.NEOAPIKey)
	assert.Equal(t, "http://neo.local/v1", cfg.NEOBaseURL)
	assert.Equal(t, 3*time.Second, cfg.NEOTimeout)
	assert.Equal(t, 2.5, cfg.NEORatePerSec)
	assert.Equal(t, 42, cfg.NEOCacheSize)
	assert.Equal(t, "http://backend:5000", cfg.SimBackendURL)
	assert.Equal(t, 20*time.Second, cfg.SimBackendTimeout)
	assert.Equal(t, 10.0, cfg.PlanetRadiusUnits)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"BATCH_SIZE", "0"},
		{"BATCH_SIZE", "9999"},
		{"BATCH_FLUSH_INTERVAL", "not-a-duration"},
		{"NEO_TIMEOUT", "bad"},
		{"NEO_TIMEOUT", "0s"},
		{"NEO_RATE_PER_SEC", "-1"},
		{"NEO_RATE_PER_SEC", "+Inf"},
		{"NEO_RATE_PER_SEC", "NaN"},
		{"SIM_BACKEND_TIMEOUT", "soon"},
		{"PLANET_RADIUS_UNITS", "0"},
		{"PLANET_RADIUS_UNITS", "NaN"},
		{"PLANET_RADIUS_UNITS", "Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidCacheSizeFallsBack(t *testing.T) {
	t.Setenv("NEO_CACHE_SIZE", "-3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.NEOCacheSize)
}

func TestLoad_PipelineDisabledSkipsKafkaChecks(t *testing.T) {
	t.Setenv("PIPELINE_ENABLED", "false")
	t.Setenv("KAFKA_SOURCE_TOPIC", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PipelineEnabled)
}
