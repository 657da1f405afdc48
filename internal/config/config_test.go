package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov/entrez/eutils", cfg.NCBI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.NCBI.Timeout)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cfg.OpenRouter.Model)
	assert.Equal(t, 30*time.Second, cfg.OpenRouter.Timeout)
	assert.Equal(t, "http://localhost:5000", cfg.OpenRouter.Referer)
	assert.Equal(t, "Bio Re:code Gene Search", cfg.OpenRouter.Title)
	assert.Equal(t, "test-key", cfg.OpenRouter.APIKey)
}

func TestLoad_KeyFromEnvironmentOnly(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.OpenRouter.APIKey)
	assert.Error(t, cfg.ValidateOpenRouter())
}

func TestValidateOpenRouter(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateOpenRouter())

	cfg.OpenRouter.APIKey = "key"
	assert.NoError(t, cfg.ValidateOpenRouter())
}
