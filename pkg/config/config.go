package config

import (
	"fmt"
	"strings"
	"time"

	"urmonov-web/pkg/logger"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Config - dastur konfiguratsiyasi
type Config struct {
	// Kontent API
	APIURL      string        `env:"API_URL" envDefault:"https://urmonov.novacode.uz/api"`
	AssetHost   string        `env:"ASSET_HOST" envDefault:"urmonov.novacode.uz"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	// Server
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	GRPCPort   string `env:"GRPC_PORT"`

	// Til va UI
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"uz"`
	SplashDelay     time.Duration `env:"SPLASH_DELAY" envDefault:"1500ms"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"3s"`

	// Forma yuborish limiti
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	FormRateLimit int    `env:"FORM_RATE_LIMIT" envDefault:"10"`

	// Avtomatik tarjima (OpenAI-compatible API)
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	TranslateBaseURL string `env:"TRANSLATE_BASE_URL" envDefault:"https://api.deepseek.com"`
	TranslateModel   string `env:"TRANSLATE_MODEL" envDefault:"deepseek-chat"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	GeminiModel      string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development", "production"
	LogLevel    string `env:"LOG_LEVEL"`
}

// LoadConfig - konfiguratsiyani environmentdan yuklash
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	logger.Info("Configuration loaded",
		zap.String("api_url", cfg.APIURL),
		zap.String("asset_host", cfg.AssetHost),
		zap.String("server_port", cfg.ServerPort),
		zap.String("grpc_port", cfg.GRPCPort),
		zap.String("redis", maskString(cfg.RedisAddr)),
		zap.String("openai_key", maskString(cfg.OpenAIAPIKey)),
		zap.String("gemini_key", maskString(cfg.GeminiAPIKey)),
		zap.String("environment", cfg.Environment),
	)

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("API_URL is required")
	}
	switch c.DefaultLocale {
	case "uz", "ru", "en":
	default:
		return fmt.Errorf("DEFAULT_LOCALE must be one of uz, ru, en (got %q)", c.DefaultLocale)
	}
	if c.FormRateLimit <= 0 {
		return fmt.Errorf("FORM_RATE_LIMIT must be positive")
	}
	return nil
}

// maskString - stringni yashirish (email@domain.com -> em***.com)
func maskString(s string) string {
	if s == "" {
		return ""
	}
	if len(s) < 4 {
		return "***"
	}
	if len(s) < 8 {
		return s[:2] + "***"
	}
	return s[:2] + "***" + s[len(s)-4:]
}

// IsDevelopment - development muhitmi
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction - production muhitmi
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasRedis - Redis sozlanganmi
func (c *Config) HasRedis() bool {
	return c.RedisAddr != ""
}

// HasTranslator - tarjima xizmati sozlanganmi (OpenAI-compatible yoki Gemini)
func (c *Config) HasTranslator() bool {
	return c.OpenAIAPIKey != "" || c.GeminiAPIKey != ""
}
