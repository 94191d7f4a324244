// Package research 在分析前收集竞品的网页资料，作为提示词的参考上下文。
package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/search"
)

// minContentLen 搜索摘要短于此长度时尝试抓取原文
const minContentLen = 200

// FetchFunc 抓取 URL 并返回正文纯文本
type FetchFunc func(url string, timeout time.Duration) (string, error)

// FetchReadable 使用 readability 提取正文
func FetchReadable(url string, timeout time.Duration) (string, error) {
	article, err := readability.FromURL(url, timeout)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

// Researcher 网页调研
type Researcher struct {
	searcher     search.Searcher
	fetch        FetchFunc
	maxResults   int
	maxSnippet   int
	fetchTimeout time.Duration
}

// New 创建调研器，fetch 为 nil 时只使用搜索摘要
func New(s search.Searcher, fetch FetchFunc, cfg config.ResearchConfig) *Researcher {
	return &Researcher{
		searcher:     s,
		fetch:        fetch,
		maxResults:   cfg.MaxResults,
		maxSnippet:   cfg.MaxSnippet,
		fetchTimeout: time.Duration(cfg.FetchTimeout) * time.Second,
	}
}

// Collect 汇总官网正文与搜索结果，返回可直接拼入提示词的笔记
func (r *Researcher) Collect(ctx context.Context, c model.Company) (string, error) {
	var sb strings.Builder
	n := 0

	if r.fetch != nil && c.Website != "" {
		if text, err := r.fetch(c.Website, r.fetchTimeout); err != nil {
			logger.Log.Warnf("官网抓取失败 [%s]: %v", c.Website, err)
		} else if text = clean(text); text != "" {
			n++
			fmt.Fprintf(&sb, "%d. Company website (%s)\n   %s\n", n, c.Website, truncate(text, r.maxSnippet))
		}
	}

	if r.searcher == nil {
		return sb.String(), nil
	}

	var errs []error
	seen := make(map[string]bool)
	answered := false
	for _, req := range r.queries(c) {
		resp, err := r.searcher.Search(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("search %q: %w", req.Query, err))
			continue
		}
		if answer := clean(resp.Answer); answer != "" && !answered {
			answered = true
			n++
			fmt.Fprintf(&sb, "%d. Search summary\n   %s\n", n, truncate(answer, r.maxSnippet))
		}
		for _, item := range resp.Results {
			if item.URL != "" && seen[item.URL] {
				continue
			}
			content := r.content(item)
			if content == "" {
				continue
			}
			seen[item.URL] = true
			n++
			fmt.Fprintf(&sb, "%d. %s (%s", n, item.Title, item.URL)
			if item.PublishedDate != "" {
				fmt.Fprintf(&sb, ", %s", item.PublishedDate)
			}
			fmt.Fprintf(&sb, ")\n   %s\n", truncate(content, r.maxSnippet))
		}
	}

	return sb.String(), errors.Join(errs...)
}

// queries 概况检索、新闻检索，以及限定在官网域名内的产品与定价检索
func (r *Researcher) queries(c model.Company) []*search.Request {
	name := c.DisplayName()
	reqs := []*search.Request{
		{Query: name + " company products pricing competitors", Topic: "general", MaxResults: r.maxResults},
		{Query: name + " latest news", Topic: "news", MaxResults: r.maxResults},
	}
	if host := model.Host(c.Website); host != "" {
		reqs = append(reqs, &search.Request{
			Query:          name + " pricing plans products",
			Topic:          "general",
			MaxResults:     r.maxResults,
			IncludeDomains: []string{host},
		})
	}
	return reqs
}

// content 优先使用搜索摘要，太短时抓取原文
func (r *Researcher) content(item search.Result) string {
	content := clean(item.Content)
	if len(content) >= minContentLen || r.fetch == nil || item.URL == "" {
		return content
	}
	fetched, err := r.fetch(item.URL, r.fetchTimeout)
	if err != nil {
		logger.Log.Debugf("原文抓取失败，使用搜索摘要 [%s]: %v", item.Title, err)
		return content
	}
	if fetched = clean(fetched); len(fetched) > len(content) {
		return fetched
	}
	return content
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
