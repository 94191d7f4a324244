package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
llm:
  base_url: https://api.example.com/v1
  api_key: sk-test
  model: gpt-4o-mini
  timeout: 90
search:
  provider: searxng
  searxng:
    base_url: http://localhost:8888
db:
  host: localhost
  user: radar
  name: radar
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "searxng", cfg.Search.Provider)
	assert.Equal(t, "http://localhost:8888", cfg.Search.SearXNG.BaseURL)
	assert.Equal(t, 90, int(cfg.LLM.TimeoutDuration().Seconds()))
	assert.True(t, cfg.DB.Enabled())
	assert.Contains(t, cfg.DB.DSN(), "port=5432")
	assert.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte("llm:\n  model: m\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Concurrency.RPM)
	assert.Equal(t, 1, cfg.Concurrency.QPS)
	assert.Equal(t, 5, cfg.Research.MaxResults)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.DB.Enabled())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLLMAPIKey:    "sk-env",
		EnvLLMModel:     "env-model",
		EnvTavilyAPIKey: "tvly-env",
	}
	var cfg Config
	cfg.LLM.APIKey = "sk-file"
	cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "env-model", cfg.LLM.Model)
	assert.Equal(t, "tvly-env", cfg.Search.Tavily.APIKey)
	assert.Empty(t, cfg.LLM.BaseURL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Search.Provider = "bing"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.api_key")
	assert.Contains(t, err.Error(), "llm.model")
	assert.Contains(t, err.Error(), "unknown search provider: bing")
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("llm: [unterminated"))
	assert.Error(t, err)
}
