package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     int    `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"` // "sqlite" or "redis"
	SQLitePath string `yaml:"sqlite_path"`
	Redis      struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

type OTPConfig struct {
	ResendCooldown string `yaml:"resend_cooldown"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	Backend BackendConfig `yaml:"backend"`
	Storage StorageConfig `yaml:"storage"`
	OTP     OTPConfig     `yaml:"otp"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	BackendBaseURL string
	BackendTimeout time.Duration
	StorageDriver  string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ResendCooldown time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present, then applies environment
// overrides. A missing file falls back to defaults so the process runs with
// just STOREFRONT_BACKEND_URL set.
func Load() (*Config, error) {
	// Optional .env for local development.
	_ = godotenv.Load()

	file := defaultConfigFile()
	if raw, err := os.ReadFile("config/config.yml"); err == nil {
		if err := yaml.Unmarshal(raw, file); err != nil {
			return nil, fmt.Errorf("could not parse config yaml: %w", err)
		}
	}

	timeout, err := time.ParseDuration(env("STOREFRONT_BACKEND_TIMEOUT", file.Backend.Timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}
	cooldown, err := time.ParseDuration(env("STOREFRONT_OTP_RESEND_COOLDOWN", file.OTP.ResendCooldown))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend cooldown: %w", err)
	}

	cfg := &Config{
		Port:           env("STOREFRONT_PORT", fmt.Sprintf("%d", file.App.Port)),
		GinMode:        env("GIN_MODE", file.App.GinMode),
		LogLevel:       env("STOREFRONT_LOG_LEVEL", file.App.LogLevel),
		BackendBaseURL: env("STOREFRONT_BACKEND_URL", file.Backend.BaseURL),
		BackendTimeout: timeout,
		StorageDriver:  env("STOREFRONT_STORAGE_DRIVER", file.Storage.Driver),
		SQLitePath:     env("STOREFRONT_SQLITE_PATH", file.Storage.SQLitePath),
		RedisAddr:      env("STOREFRONT_REDIS_ADDR", file.Storage.Redis.Addr),
		RedisPassword:  env("STOREFRONT_REDIS_PASSWORD", file.Storage.Redis.Password),
		RedisDB:        file.Storage.Redis.DB,
		ResendCooldown: cooldown,
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required (STOREFRONT_BACKEND_URL)")
	}
	switch cfg.StorageDriver {
	case "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func defaultConfigFile() *ConfigFile {
	f := &ConfigFile{}
	f.App.Port = 3000
	f.App.GinMode = "release"
	f.App.LogLevel = "info"
	f.Backend.BaseURL = ""
	f.Backend.Timeout = "30s"
	f.Storage.Driver = "sqlite"
	f.Storage.SQLitePath = "storefront.db"
	f.Storage.Redis.Addr = "localhost:6379"
	f.OTP.ResendCooldown = "60s"
	return f
}
