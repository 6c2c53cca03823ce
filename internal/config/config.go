package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTExpiry time.Duration `mapstructure:"JWT_EXPIRY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// File storage configuration
	StorageDriver       string `mapstructure:"STORAGE_DRIVER"`
	StorageRoot         string `mapstructure:"STORAGE_ROOT"`
	GCSBucket           string `mapstructure:"GCS_BUCKET"`
	StorageEmulatorHost string `mapstructure:"STORAGE_EMULATOR_HOST"`
	InvoiceMaxSizeKB    int64  `mapstructure:"INVOICE_MAX_SIZE_KB"`

	// Notification configuration
	NotificationDriver  string        `mapstructure:"NOTIFICATION_DRIVER"`
	NotificationTimeout time.Duration `mapstructure:"NOTIFICATION_TIMEOUT"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	RedisPassword       string        `mapstructure:"REDIS_PASSWORD"`
	RedisChannel        string        `mapstructure:"REDIS_CHANNEL"`
	MQTTBroker          string        `mapstructure:"MQTT_BROKER"`
	MQTTClientID        string        `mapstructure:"MQTT_CLIENT_ID"`
	MQTTTopic           string        `mapstructure:"MQTT_TOPIC"`

	// Orphaned invoice file sweep
	OrphanGracePeriod time.Duration `mapstructure:"ORPHAN_GRACE_PERIOD"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "vehicle_maintenance")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_EXPIRY", "24h")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Storage defaults
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_ROOT", "./storage/app")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("STORAGE_EMULATOR_HOST", "")
	viper.SetDefault("INVOICE_MAX_SIZE_KB", 10240)

	// Notification defaults
	viper.SetDefault("NOTIFICATION_DRIVER", "log")
	viper.SetDefault("NOTIFICATION_TIMEOUT", "10s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHANNEL", "notifications")
	viper.SetDefault("MQTT_BROKER", "")
	viper.SetDefault("MQTT_CLIENT_ID", "vehicle-maintenance-backend")
	viper.SetDefault("MQTT_TOPIC", "notifications")

	viper.SetDefault("ORPHAN_GRACE_PERIOD", "24h")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.StorageDriver {
	case "local", "memory":
	case "gcs":
		if config.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_DRIVER=gcs")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", config.StorageDriver)
	}

	switch config.NotificationDriver {
	case "", "none", "log":
	case "redis":
		if config.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when NOTIFICATION_DRIVER=redis")
		}
	case "mqtt":
		if config.MQTTBroker == "" {
			return fmt.Errorf("MQTT_BROKER is required when NOTIFICATION_DRIVER=mqtt")
		}
	default:
		return fmt.Errorf("unsupported NOTIFICATION_DRIVER %q", config.NotificationDriver)
	}

	if config.InvoiceMaxSizeKB <= 0 {
		return fmt.Errorf("INVOICE_MAX_SIZE_KB must be positive")
	}

	return nil
}

// InvoiceMaxBytes returns the invoice size ceiling in bytes
func (c *Config) InvoiceMaxBytes() int64 {
	return c.InvoiceMaxSizeKB * 1024
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
