package config

import (
	"fmt"
	"time"

	"marathon-submissions/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string
	Port     int
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
}

type EventConfig struct {
	// Timezone all hour slots are rendered and keyed in, e.g. "America/Chicago".
	Timezone string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Event    EventConfig
}

var cfg *Config

// Load reads .env (if present) plus the environment into the process config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, reading environment directly")
	}

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 7070)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "marathon_submissions")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("EVENT_TIMEZONE", "UTC")

	c := &Config{
		Server: ServerConfig{
			Host:     viper.GetString("SERVER_HOST"),
			Port:     viper.GetInt("SERVER_PORT"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Event: EventConfig{
			Timezone: viper.GetString("EVENT_TIMEZONE"),
		},
	}

	if c.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := time.LoadLocation(c.Event.Timezone); err != nil {
		return nil, fmt.Errorf("invalid EVENT_TIMEZONE %q: %w", c.Event.Timezone, err)
	}

	cfg = c
	return cfg, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config: Get called before Load")
	}
	return cfg
}

func GetSafe() (*Config, bool) {
	return cfg, cfg != nil
}

// EventLocation resolves the configured event timezone, falling back to UTC
// when the config is not initialized (tests construct services directly).
func EventLocation() *time.Location {
	c, ok := GetSafe()
	if !ok {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Event.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
