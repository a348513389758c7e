package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	PipelineEnabled    bool
	KafkaBrokers       []string
	KafkaSourceTopic   string
	KafkaSinkTopic     string
	KafkaGroupID       string
	BatchSize          int
	BatchFlushInterval time.Duration

	// NASA NeoWs client configuration.
	NEOAPIKey     string
	NEOBaseURL    string
	NEOTimeout    time.Duration
	NEORatePerSec float64
	NEOCacheSize  int

	// Remote simulation backend. Empty URL disables it.
	SimBackendURL     string
	SimBackendTimeout time.Duration

	// PlanetRadiusUnits is the globe radius in scene units, used for crater sizing.
	PlanetRadiusUnits float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	neoTimeout, err := parsePositiveDuration("NEO_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	backendTimeout, err := parsePositiveDuration("SIM_BACKEND_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}

	neoRate, err := parsePositiveFloat("NEO_RATE_PER_SEC", "1")
	if err != nil {
		return nil, err
	}

	planetRadius, err := parsePositiveFloat("PLANET_RADIUS_UNITS", "6.371")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		PipelineEnabled:    os.Getenv("PIPELINE_ENABLED") != "false",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "impact-scenarios"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "impact-reports"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "impact-sim"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		NEOAPIKey:     sharedcfg.EnvOrDefault("NEO_API_KEY", "DEMO_KEY"),
		NEOBaseURL:    sharedcfg.EnvOrDefault("NEO_BASE_URL", "https://api.nasa.gov/neo/rest/v1"),
		NEOTimeout:    neoTimeout,
		NEORatePerSec: neoRate,
		NEOCacheSize:  parseNEOCacheSize(),

		SimBackendURL:     os.Getenv("SIM_BACKEND_URL"),
		SimBackendTimeout: backendTimeout,

		PlanetRadiusUnits: planetRadius,
	}

	if cfg.PipelineEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}
	if cfg.NEOBaseURL == "" {
		return nil, errors.New("NEO_BASE_URL is required")
	}

	return cfg, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveFloat(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, def), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parseNEOCacheSize() int {
	if s := os.Getenv("NEO_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 500
}
