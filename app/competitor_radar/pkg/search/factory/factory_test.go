package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/searxng"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	s, err := NewSearcher(config.SearchConfig{})
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = NewSearcher(config.SearchConfig{Provider: "tavily", Tavily: config.TavilyConfig{APIKey: "k"}})
	require.NoError(t, err)
	assert.IsType(t, &tavily.Client{}, s)

	s, err = NewSearcher(config.SearchConfig{Provider: "searxng", SearXNG: config.SearXNGConfig{BaseURL: "http://localhost:8888"}})
	require.NoError(t, err)
	assert.IsType(t, &searxng.Client{}, s)
}

func TestNewSearcherErrors(t *testing.T) {
	_, err := NewSearcher(config.SearchConfig{Provider: "tavily"})
	assert.ErrorContains(t, err, "api key is missing")

	_, err = NewSearcher(config.SearchConfig{Provider: "searxng"})
	assert.ErrorContains(t, err, "base url is missing")

	_, err = NewSearcher(config.SearchConfig{Provider: "bing"})
	assert.ErrorContains(t, err, "unknown search provider")
}
