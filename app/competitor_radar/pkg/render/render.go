// Package render 将竞品记录渲染为固定版式的 HTML 报告。
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

// Placeholder 缺失标量字段的占位文本
const Placeholder = "N/A"

var (
	pageTemplate  = template.Must(template.New("report").Parse(pageTpl))
	errorTemplate = template.Must(template.New("error").Parse(errorTpl))
)

type productView struct {
	Name        string
	Category    string
	Description string
}

type newsView struct {
	Title   string
	Date    string
	Source  string
	Summary string
}

type socialView struct {
	Icon  string
	Label string
	URL   string
}

// pageData 模板渲染的数据，所有缺省值在此处一次性解析
type pageData struct {
	CompanyName  string
	WebsiteURL   string
	WebsiteText  string
	AnalysisDate string
	Description  string
	FoundedYear  string
	Headquarters string
	Size         string
	Products     []productView
	TargetMarket string
	MarketShare  string
	Competitors  []string
	Strengths    []string
	Weaknesses   []string
	News         []newsView
	PricingModel string
	TechStack    []string
	Social       []socialView
}

// Render 渲染单个竞品报告。相同输入始终得到相同输出。
func Render(rec *model.CompetitorRecord) (string, error) {
	if rec == nil {
		rec = &model.CompetitorRecord{}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(rec)); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// RenderError 渲染分析失败时的简易错误页
func RenderError(identifier string, cause error) string {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}

	var buf bytes.Buffer
	data := struct{ Identifier, Message string }{orDefault(identifier, "Unknown Company"), msg}
	if err := errorTemplate.Execute(&buf, data); err != nil {
		// 模板固定不变，此分支理论上不可达
		return "<html><body><h1>Analysis Failed</h1><p>" +
			template.HTMLEscapeString(data.Identifier) + "</p></body></html>"
	}
	return buf.String()
}

func newPageData(rec *model.CompetitorRecord) pageData {
	d := pageData{
		CompanyName:  orDefault(rec.CompanyName, "Unknown Company"),
		WebsiteURL:   orDefault(rec.Website, "#"),
		WebsiteText:  orDefault(rec.Website, Placeholder),
		AnalysisDate: orDefault(rec.AnalysisDate, Placeholder),
		Description:  orDefault(rec.Overview.Description, "No description available"),
		FoundedYear:  Placeholder,
		Headquarters: deref(rec.Overview.Headquarters),
		Size:         deref(rec.Overview.Size),
		TargetMarket: orDefault(rec.MarketPosition.TargetMarket, Placeholder),
		MarketShare:  deref(rec.MarketPosition.MarketShare),
		Competitors:  nonBlank(rec.MarketPosition.KeyCompetitors),
		Strengths:    nonBlank(rec.Strengths),
		Weaknesses:   nonBlank(rec.Weaknesses),
		PricingModel: deref(rec.PricingModel),
		TechStack:    nonBlank(rec.TechnologyStack),
		Social:       socialLinks(rec.SocialMediaPresence),
	}
	if y := rec.Overview.FoundedYear; y != nil && *y != 0 {
		d.FoundedYear = strconv.Itoa(int(*y))
	}

	for _, p := range rec.ProductsServices {
		if p.Blank() {
			continue
		}
		d.Products = append(d.Products, productView{
			Name:        orDefault(p.Name, Placeholder),
			Category:    orDefault(p.Category, Placeholder),
			Description: orDefault(p.Description, "No description available"),
		})
	}
	for _, n := range rec.RecentNews {
		if n.Blank() {
			continue
		}
		d.News = append(d.News, newsView{
			Title:   orDefault(n.Title, "No Title"),
			Date:    orDefault(n.Date, Placeholder),
			Source:  orDefault(n.Source, "Unknown Source"),
			Summary: orDefault(n.Summary, "No summary available"),
		})
	}
	return d
}

func socialLinks(s *model.SocialPresence) []socialView {
	if s.Empty() {
		return nil
	}

	platforms := []struct {
		icon, label string
		url         *string
	}{
		{"💼", "LinkedIn", s.LinkedIn},
		{"🐦", "Twitter/X", s.Twitter},
		{"📘", "Facebook", s.Facebook},
	}

	var links []socialView
	for _, p := range platforms {
		if u := deref(p.url); u != Placeholder {
			links = append(links, socialView{Icon: p.icon, Label: p.label, URL: u})
		}
	}
	return links
}

func deref(p *string) string {
	if p == nil {
		return Placeholder
	}
	return orDefault(*p, Placeholder)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// nonBlank 去掉空白元素，保持原有顺序
func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}
