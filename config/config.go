package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config for the whole application
type Config struct {
	App       AppConfig
	API       APIConfig
	Generator GeneratorConfig
	Remote    RemoteConfig
	Kafka     KafkaConfig
	Metrics   MetricsConfig
}

// General application configuration
type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
}

// Configuration for the API server
type APIConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Configuration for the portfolio synthesizer
type GeneratorConfig struct {
	TradingDays int
	// SeedDefaults controls whether the three reference portfolios are
	// generated at startup.
	SeedDefaults bool
}

// Configuration for the upstream dashboard backend. When the backend is
// unreachable the service falls back to synthesized data.
type RemoteConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

// Configuration for the analytics snapshot publisher
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// Configuration for Prometheus metrics
type MetricsConfig struct {
	Enabled bool
	Port    int
}

// Loads the configuration from a file and environment variables
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("PORTFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "portfolio-analytics")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.log_level", "info")

	// API defaults
	viper.SetDefault("api.host", "0.0.0.0")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.read_timeout", "10s")
	viper.SetDefault("api.write_timeout", "10s")
	viper.SetDefault("api.shutdown_timeout", "30s")

	// Generator defaults
	viper.SetDefault("generator.trading_days", 504)
	viper.SetDefault("generator.seed_defaults", true)

	// Remote backend defaults
	viper.SetDefault("remote.enabled", false)
	viper.SetDefault("remote.base_url", "http://localhost:8000/api/v1")
	viper.SetDefault("remote.timeout", "5s")

	// Kafka defaults
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "analytics.results")
	viper.SetDefault("kafka.batch_timeout", "100ms")

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)
}
