package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	NCBI struct {
		BaseURL string
		Timeout time.Duration
	}
	OpenRouter struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
		Referer string
		Title   string
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("ncbi.base_url", "https://eutils.ncbi.nlm.nih.gov/entrez/eutils")
	viper.SetDefault("ncbi.timeout", "10s")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "anthropic/claude-3.5-sonnet")
	viper.SetDefault("openrouter.timeout", "30s")
	viper.SetDefault("openrouter.referer", "http://localhost:5000")
	viper.SetDefault("openrouter.title", "Bio Re:code Gene Search")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.NCBI.BaseURL = viper.GetString("ncbi.base_url")
	config.NCBI.Timeout = viper.GetDuration("ncbi.timeout")
	config.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	config.OpenRouter.Model = viper.GetString("openrouter.model")
	config.OpenRouter.Timeout = viper.GetDuration("openrouter.timeout")
	config.OpenRouter.Referer = viper.GetString("openrouter.referer")
	config.OpenRouter.Title = viper.GetString("openrouter.title")

	// The provider credential is a secret: environment only, never the
	// config file, never logged.
	config.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")

	return &config, nil
}

func (c *Config) ValidateOpenRouter() error {
	if c.OpenRouter.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	return nil
}
