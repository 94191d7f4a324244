package factory

import (
	"fmt"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/search"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/searxng"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例；未配置 provider 时返回 nil，表示不做网页调研
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	switch cfg.Provider {
	case "":
		return nil, nil

	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey), nil

	case "searxng":
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Provider)
	}
}
