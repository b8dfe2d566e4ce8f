package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream platform API (specialists, appointments, account).
	PlatformAPIURL     string        `mapstructure:"PLATFORM_API_URL"`
	PlatformAPITimeout time.Duration `mapstructure:"PLATFORM_API_TIMEOUT"`

	// Resource catalog source file.
	ResourceCatalogPath string `mapstructure:"RESOURCE_CATALOG_PATH"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisRosterDB  int    `mapstructure:"REDIS_ROSTER_DB"`

	// Booking session lifetime.
	BookingSessionTTL time.Duration `mapstructure:"BOOKING_SESSION_TTL"`

	// DemoMode serves a synthesized specialist roster when the platform API
	// is unreachable. Fabricated availability must never be presented as
	// real, so this is opt-in and clearly logged.
	DemoMode bool `mapstructure:"DEMO_MODE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("PLATFORM_API_URL", "http://localhost:5001")
	viper.SetDefault("PLATFORM_API_TIMEOUT", "10s")
	viper.SetDefault("RESOURCE_CATALOG_PATH", "resource/resources.json")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_ROSTER_DB", 1)
	viper.SetDefault("BOOKING_SESSION_TTL", "30m")
	viper.SetDefault("DEMO_MODE", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
