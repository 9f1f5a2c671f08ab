package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type UploadConfig struct {
	MaxFileSize    int64
	MaxPromptChars int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenRouter))

	apiKey := getEnv("OPENROUTER_API_KEY", "")
	model := getEnv("LLM_MODEL", "openai/gpt-4o-mini")
	if provider == ProviderGemini {
		apiKey = getEnv("GEMINI_API_KEY", "")
		model = getEnv("LLM_MODEL", "gemini-2.5-flash")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider: provider,
			APIKey:   apiKey,
			BaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:    model,
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxPromptChars: getEnvAsInt("MAX_PROMPT_CHARS", 4000),
		},
	}
}

// Configured reports whether a credential for the completion API is present.
// The server starts and answers health checks either way.
func (c *Config) Configured() bool {
	return c.LLM.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
