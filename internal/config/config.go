package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// News search API settings
	NewsAPIKey   string `json:"-"` // Don't expose in JSON
	NewsBaseURL  string `json:"news_base_url"`
	NewsQuery    string `json:"news_query"`
	NewsLanguage string `json:"news_language"`

	// Gemini API settings
	GeminiAPIKey string `json:"-"` // Don't expose in JSON
	TextModel    string `json:"text_model"`
	ImageModel   string `json:"image_model"`

	// Storage settings
	StorageBackend string `json:"storage_backend"` // memory or cloud-storage
	StorageBucket  string `json:"storage_bucket"`

	// Slack settings (optional: empty token disables notifications)
	SlackBotToken string `json:"-"` // Don't expose in JSON
	SlackChannel  string `json:"slack_channel"`

	// Scheduling (optional: empty disables scheduled generation)
	GenerateSchedule string `json:"generate_schedule"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Host:             getEnvOrDefault("HOST", "0.0.0.0"),
		NewsAPIKey:       getEnvOrDefault("NEWS_API_KEY", ""),
		NewsBaseURL:      getEnvOrDefault("NEWS_BASE_URL", "https://newsapi.org/v2/everything"),
		NewsQuery:        getEnvOrDefault("NEWS_QUERY", "lavoro"),
		NewsLanguage:     getEnvOrDefault("NEWS_LANGUAGE", "it"),
		GeminiAPIKey:     getEnvOrDefault("GEMINI_API_KEY", ""),
		TextModel:        getEnvOrDefault("TEXT_MODEL", "gemini-2.0-flash"),
		ImageModel:       getEnvOrDefault("IMAGE_MODEL", "gemini-2.0-flash-exp-image-generation"),
		StorageBackend:   getEnvOrDefault("STORAGE_BACKEND", "memory"),
		StorageBucket:    getEnvOrDefault("STORAGE_BUCKET", "article-generator-store"),
		SlackBotToken:    getEnvOrDefault("SLACK_BOT_TOKEN", ""),
		SlackChannel:     getEnvOrDefault("SLACK_CHANNEL", "#articles"),
		GenerateSchedule: getEnvOrDefault("GENERATE_SCHEDULE", ""),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.NewsAPIKey == "" {
		return &ConfigError{Field: "NEWS_API_KEY", Message: "news API key is required"}
	}
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key is required"}
	}
	if c.StorageBackend != "memory" && c.StorageBackend != "cloud-storage" {
		return &ConfigError{Field: "STORAGE_BACKEND", Message: "must be memory or cloud-storage"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
