package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Bustimes BustimesConfig
	Admin    AdminConfig
	Site     SiteConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled    bool
	StatusTTL  time.Duration
	ListingTTL time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type BustimesConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AdminConfig struct {
	User     string
	Password string
}

type SiteConfig struct {
	PhoneCountryCode        string
	DefaultOperatorTemplate string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

const (
	defaultBustimesURL      = "https://bustimes.org/api/services/"
	defaultOperatorTemplate = "siteui/operator_detail.html"
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			AutoMigrate:     viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:    viper.GetBool("CACHE_ENABLED"),
			StatusTTL:  time.Duration(viper.GetInt("STATUS_CACHE_TTL")) * time.Second,
			ListingTTL: time.Duration(viper.GetInt("LISTING_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:      viper.GetString("LOG_LEVEL"),
			File:       viper.GetString("LOG_FILE"),
			MaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Bustimes: BustimesConfig{
			BaseURL: viper.GetString("BUSTIMES_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BUSTIMES_TIMEOUT")) * time.Second,
		},
		Admin: AdminConfig{
			User:     viper.GetString("ADMIN_USER"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Site: SiteConfig{
			PhoneCountryCode:        viper.GetString("PHONE_COUNTRY_CODE"),
			DefaultOperatorTemplate: viper.GetString("DEFAULT_OPERATOR_TEMPLATE"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "transit")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("STATUS_CACHE_TTL", 30)
	viper.SetDefault("LISTING_CACHE_TTL", 300)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_MAX_SIZE_MB", 10)
	viper.SetDefault("LOG_MAX_BACKUPS", 7)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 7)
	viper.SetDefault("BUSTIMES_BASE_URL", defaultBustimesURL)
	viper.SetDefault("BUSTIMES_TIMEOUT", 20)
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("PHONE_COUNTRY_CODE", "44")
	viper.SetDefault("DEFAULT_OPERATOR_TEMPLATE", defaultOperatorTemplate)
	viper.SetDefault("WORKER_CONSUMER_GROUP", "route-import-workers")
	viper.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Validate checks values that have no usable default.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	if c.Bustimes.Timeout <= 0 {
		return fmt.Errorf("BUSTIMES_TIMEOUT must be positive")
	}
	if c.Site.PhoneCountryCode == "" {
		return fmt.Errorf("PHONE_COUNTRY_CODE must not be empty")
	}
	return nil
}

// IsProduction reports whether the service runs with API_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN is the key=value connection string understood by both pgx and lib/pq.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
