// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	YouTube  YouTubeConfig
	Quota    QuotaConfig
	Analysis AnalysisConfig
	Batch    BatchConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DatabaseConfig struct {
	Host           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	Port           int
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration
}

// RedisConfig contains Redis connection configuration for the result cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// YouTubeConfig contains YouTube Data API configuration.
type YouTubeConfig struct {
	APIKey               string
	MaxRequestsPerSecond int
}

// QuotaConfig contains daily API quota budget configuration.
type QuotaConfig struct {
	DailyLimit     int
	AlertThreshold int
}

// AnalysisConfig contains classification and caching parameters.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalysisConfig struct {
	RecentDays                int
	SnapshotDays              int
	CacheTTL                  time.Duration
	GrowthThresholdMultiplier float64
	HighFrequencyPerWeek      int
	MediumFrequencyPerWeek    int
	ViralTopPercent           int
	ViralShareThreshold       int
}

// BatchConfig contains daily snapshot batch configuration.
type BatchConfig struct {
	Enabled       bool
	ExecutionTime string
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Database
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "youtube_analytics")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.maxconnections", 10)
	viper.SetDefault("database.minconnections", 5)
	viper.SetDefault("database.maxidletime", 10*time.Minute)
	viper.SetDefault("database.maxlifetime", 1*time.Hour)

	// Redis
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// YouTube API
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.maxrequestspersecond", 10)

	// Quota budget (YouTube Data API v3 default daily limit)
	viper.SetDefault("quota.dailylimit", 10000)
	viper.SetDefault("quota.alertthreshold", 8000)

	// Analysis
	viper.SetDefault("analysis.recentdays", 30)
	viper.SetDefault("analysis.snapshotdays", 90)
	viper.SetDefault("analysis.cachettl", 6*time.Hour)
	viper.SetDefault("analysis.growththresholdmultiplier", 1.2)
	viper.SetDefault("analysis.highfrequencyperweek", 3)
	viper.SetDefault("analysis.mediumfrequencyperweek", 1)
	viper.SetDefault("analysis.viraltoppercent", 10)
	viper.SetDefault("analysis.viralsharethreshold", 50)

	// Batch
	viper.SetDefault("batch.enabled", true)
	viper.SetDefault("batch.executiontime", "03:00")

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
