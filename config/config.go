package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Booking engine knobs.
	DefaultSite           string `mapstructure:"DEFAULT_SITE"`            // fallback when a location is not bookable
	BusinessDayStart      string `mapstructure:"BUSINESS_DAY_START"`      // earliest suggested slot, "HH:MM"
	BusinessDayEnd        string `mapstructure:"BUSINESS_DAY_END"`        // latest suggested slot end, "HH:MM"
	SuggestionLimit       int    `mapstructure:"SUGGESTION_LIMIT"`        // max alternative time windows returned
	DefaultMeetingMinutes int    `mapstructure:"DEFAULT_MEETING_MINUTES"` // window derived from an appointment instant
	ReminderLeadMinutes   int    `mapstructure:"REMINDER_LEAD_MINUTES"`   // how far before start a reminder fires
	RoomCacheTTLSeconds   int    `mapstructure:"ROOM_CACHE_TTL_SECONDS"`  // catalog cache lifetime
	SeedSampleBookings    bool   `mapstructure:"SEED_SAMPLE_BOOKINGS"`    // demo bookings alongside the room catalog
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "roomly")
	viper.SetDefault("DEFAULT_SITE", "Beijing")
	viper.SetDefault("BUSINESS_DAY_START", "08:00")
	viper.SetDefault("BUSINESS_DAY_END", "20:00")
	viper.SetDefault("SUGGESTION_LIMIT", 3)
	viper.SetDefault("DEFAULT_MEETING_MINUTES", 60)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 15)
	viper.SetDefault("ROOM_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SEED_SAMPLE_BOOKINGS", false)

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
