package model

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Company 待分析的竞争对手
type Company struct {
	Website string
	Name    string
}

// DisplayName 优先使用公司名称，未提供时退回到网址
func (c Company) DisplayName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return strings.TrimSpace(c.Website)
}

// Host 返回网址的小写主机名并去掉 www. 前缀，无法解析时返回空串
func Host(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// CompetitorRecord 单个竞争对手的结构化分析结果
type CompetitorRecord struct {
	CompanyName         string          `json:"company_name"`
	Website             string          `json:"website"`
	AnalysisDate        string          `json:"analysis_date"`
	Overview            Overview        `json:"overview"`
	ProductsServices    []Product       `json:"products_services"`
	MarketPosition      MarketPosition  `json:"market_position"`
	Strengths           []string        `json:"strengths"`
	Weaknesses          []string        `json:"weaknesses"`
	RecentNews          []NewsItem      `json:"recent_news"`
	PricingModel        *string         `json:"pricing_model"`
	TechnologyStack     []string        `json:"technology_stack"`
	SocialMediaPresence *SocialPresence `json:"social_media_presence"`
}

// Overview 公司概况
type Overview struct {
	Description  string  `json:"description"`
	FoundedYear  *Year   `json:"founded_year"`
	Headquarters *string `json:"headquarters"`
	Size         *string `json:"size"`
}

// Year 年份。模型有时会把整数写成 2010.0，这里按整数接收
type Year int

// UnmarshalJSON 接受整数值的数字字面量，拒绝带小数部分的值
func (y *Year) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year: %w", err)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("year: %s is not a whole number", n)
	}
	*y = Year(f)
	return nil
}

// Product 产品或服务
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// MarketPosition 市场定位
type MarketPosition struct {
	TargetMarket   string   `json:"target_market"`
	MarketShare    *string  `json:"market_share"`
	KeyCompetitors []string `json:"key_competitors"`
}

// Blank 所有字段均为空白，null 元素解码后也是这种状态
func (p Product) Blank() bool {
	return strings.TrimSpace(p.Name+p.Description+p.Category) == ""
}

// NewsItem 近期新闻
type NewsItem struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

// Blank 所有字段均为空白
func (n NewsItem) Blank() bool {
	return strings.TrimSpace(n.Title+n.Date+n.Summary+n.Source) == ""
}

// SocialPresence 社交媒体主页
type SocialPresence struct {
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Facebook *string `json:"facebook"`
}

// Empty 所有平台均无链接时返回 true
func (s *SocialPresence) Empty() bool {
	if s == nil {
		return true
	}
	for _, p := range []*string{s.LinkedIn, s.Twitter, s.Facebook} {
		if p != nil && strings.TrimSpace(*p) != "" {
			return false
		}
	}
	return true
}
