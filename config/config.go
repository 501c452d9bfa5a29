package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// LLM Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`      // API key; "ollama" works for a local Ollama server
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`     // e.g., "http://localhost:11434/v1" for Ollama; empty for api.openai.com
	ModelName     string `mapstructure:"MODEL_NAME"`          // e.g., "deepseek-coder:6.7b", "gpt-4o"
	LLMTimeoutSec int    `mapstructure:"LLM_TIMEOUT_SECONDS"` // Upper bound per completion call

	// Pipeline Configuration
	DesignTokensPath   string `mapstructure:"DESIGN_TOKENS_PATH"`   // Path to design_tokens.json
	OutputDir          string `mapstructure:"OUTPUT_DIR"`           // Where generated component files are written
	SaveInvalid        bool   `mapstructure:"SAVE_INVALID"`         // Persist output even when validation still fails after the fix pass
	AllowForeignColors bool   `mapstructure:"ALLOW_FOREIGN_COLORS"` // Lenient mode: skip the unauthorized-hex-color check
}

// LLMTimeout returns the per-call completion deadline as a duration.
func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSec) * time.Second
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("MODEL_NAME", "gpt-4o")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 120)
	viper.SetDefault("DESIGN_TOKENS_PATH", "design_tokens.json")
	viper.SetDefault("OUTPUT_DIR", "output_component")
	viper.SetDefault("SAVE_INVALID", true)
	viper.SetDefault("ALLOW_FOREIGN_COLORS", false)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. LLM calls will fail unless the endpoint accepts any key.")
	}

	return
}
