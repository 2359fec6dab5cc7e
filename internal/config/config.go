package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kapu/haengsi-web-go/internal/constants"
	apperrors "github.com/kapu/haengsi-web-go/pkg/errors"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", constants.GenerationConfig.GeminiModel),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", constants.GenerationConfig.OpenAIModel),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", false),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return apperrors.NewConfigError("GEMINI_API_KEY 환경변수가 설정되지 않았습니다", "GEMINI_API_KEY")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.NewConfigError("SERVER_PORT must be a valid TCP port", "SERVER_PORT")
	}
	if c.OpenAI.EnableFallback && c.OpenAI.APIKey == "" {
		return apperrors.NewConfigError("OPENAI_ENABLE_FALLBACK requires OPENAI_API_KEY", "OPENAI_API_KEY")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
