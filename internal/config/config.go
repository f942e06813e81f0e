package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Catalog   CatalogConfig
	Floor     FloorConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

// DatabaseConfig names the in-memory store. Nothing is written to disk.
type DatabaseConfig struct {
	Name   string
	LogSQL bool
}

type CatalogConfig struct {
	Path string
}

// FloorConfig holds the floor plan geometry used to clamp dragged tables
type FloorConfig struct {
	Width     float64
	Height    float64
	TableSize float64
	Padding   float64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "goa-pub-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TIMEZONE", "Europe/Istanbul")
	viper.SetDefault("DB_NAME", "goapub")
	viper.SetDefault("DB_LOG_SQL", false)
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("FLOOR_WIDTH", 900)
	viper.SetDefault("FLOOR_HEIGHT", 600)
	viper.SetDefault("FLOOR_TABLE_SIZE", 100)
	viper.SetDefault("FLOOR_PADDING", 20)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			Debug:    viper.GetBool("APP_DEBUG"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Name:   viper.GetString("DB_NAME"),
			LogSQL: viper.GetBool("DB_LOG_SQL"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Floor: FloorConfig{
			Width:     viper.GetFloat64("FLOOR_WIDTH"),
			Height:    viper.GetFloat64("FLOOR_HEIGHT"),
			TableSize: viper.GetFloat64("FLOOR_TABLE_SIZE"),
			Padding:   viper.GetFloat64("FLOOR_PADDING"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// DSN returns a shared-cache in-memory SQLite DSN. The name keeps separate
// stores apart when several are opened in one process (tests).
func (c *DatabaseConfig) DSN() string {
	return "file:" + c.Name + "?mode=memory&cache=shared&_foreign_keys=1"
}

// Location resolves the configured timezone, falling back to local time
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}
