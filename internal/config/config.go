package config

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
)

// Snapshot store backends.
const (
	SnapshotStorePostgres = "postgres"
	SnapshotStoreRedis    = "redis"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	Receipt   ReceiptConfig
	Metrics   MetricsConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	KeyPrefix   string
	SnapshotTTL int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type ReceiptConfig struct {
	TempDir        string
	SnapshotStore  string
	DeviceProfiles string
}

type MetricsConfig struct {
	Enabled bool
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

// Load reads .env and the process environment through the global viper instance.
func Load() *Config {
	return LoadWith(viper.GetViper(), ".env")
}

// LoadWith reads envFile (when present) and the environment into v.
func LoadWith(v *viper.Viper, envFile string) *Config {
	v.SetConfigFile(envFile)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg(".env file not found, using environment variables")
	}

	// Set defaults
	v.SetDefault("APP_NAME", "woocommerce-pos-receipts")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "wcpos")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "fiscal_snapshot:")
	v.SetDefault("REDIS_SNAPSHOT_TTL", 86400)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("RECEIPT_TEMP_DIR", "")
	v.SetDefault("RECEIPT_SNAPSHOT_STORE", SnapshotStorePostgres)
	v.SetDefault("RECEIPT_DEVICE_PROFILES", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:        v.GetString("REDIS_HOST"),
			Port:        v.GetInt("REDIS_PORT"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DB:          v.GetInt("REDIS_DB"),
			KeyPrefix:   v.GetString("REDIS_KEY_PREFIX"),
			SnapshotTTL: v.GetInt("REDIS_SNAPSHOT_TTL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		Receipt: ReceiptConfig{
			TempDir:        v.GetString("RECEIPT_TEMP_DIR"),
			SnapshotStore:  v.GetString("RECEIPT_SNAPSHOT_STORE"),
			DeviceProfiles: v.GetString("RECEIPT_DEVICE_PROFILES"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	var fields []apperror.FieldError
	switch c.Receipt.SnapshotStore {
	case SnapshotStorePostgres, SnapshotStoreRedis:
	default:
		fields = append(fields, apperror.FieldError{
			Field:   "RECEIPT_SNAPSHOT_STORE",
			Message: "must be postgres or redis",
		})
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Duration < 1 {
		fields = append(fields, apperror.FieldError{
			Field:   "RATE_LIMIT_REQUESTS",
			Message: "rate limit requests and duration must be positive",
		})
	}
	if len(fields) == 0 {
		return nil
	}
	err := apperror.Wrap(http.StatusInternalServerError, apperror.ReasonConfig, "Invalid configuration", nil)
	err.Errors = fields
	return err
}

// RateWindow returns the rate limiter window.
func (c *RateLimitConfig) RateWindow() time.Duration {
	return time.Duration(c.Duration) * time.Second
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// SnapshotExpiry returns how long cached fiscal snapshots live.
func (c *RedisConfig) SnapshotExpiry() time.Duration {
	return time.Duration(c.SnapshotTTL) * time.Second
}

// Addr returns the host:port address of the Redis server.
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
