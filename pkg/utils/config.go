package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Pricing  PricingConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string

	// CORSOrigins are the browser origins allowed to send credentials.
	CORSOrigins []string
}

// BackendConfig points at the remote CINIX booking backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PricingConfig holds whole-rupiah prices.
type PricingConfig struct {
	TicketPrice int64
	AdminFee    int64
}

type StorageConfig struct {
	Driver string // memory, redis, postgres
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	URL string
}

type BrokerConfig struct {
	URL string
}

type SessionConfig struct {
	IdleTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinix-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	viper.SetDefault("BACKEND_BASE_URL", "https://cinix-be.vercel.app")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TICKET_PRICE", 50000)
	viper.SetDefault("ADMIN_FEE", 3000)
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_IDLE_MINUTES", 30)

	// .env opsional, environment tetap dibaca
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),

			CORSOrigins: splitCSV(viper.GetString("CORS_ORIGINS")),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Pricing: PricingConfig{
			TicketPrice: viper.GetInt64("TICKET_PRICE"),
			AdminFee:    viper.GetInt64("ADMIN_FEE"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		Broker: BrokerConfig{
			URL: viper.GetString("RABBITMQ_URL"),
		},
		Session: SessionConfig{
			IdleTimeout: time.Duration(viper.GetInt("SESSION_IDLE_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
