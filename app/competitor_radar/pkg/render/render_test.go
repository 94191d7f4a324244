package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/parser"
)

func strPtr(s string) *string { return &s }

func yearPtr(y int) *model.Year {
	v := model.Year(y)
	return &v
}

func fullRecord() *model.CompetitorRecord {
	return &model.CompetitorRecord{
		CompanyName:  "Stripe",
		Website:      "https://stripe.com",
		AnalysisDate: "2024-12-01",
		Overview: model.Overview{
			Description:  "Payments infrastructure for the internet",
			FoundedYear:  yearPtr(2010),
			Headquarters: strPtr("San Francisco, CA"),
			Size:         strPtr("5000+ employees"),
		},
		ProductsServices: []model.Product{
			{Name: "Payments", Description: "Online payments", Category: "Fintech"},
			{Name: "Billing", Description: "Subscriptions", Category: "Fintech"},
		},
		MarketPosition: model.MarketPosition{
			TargetMarket:   "Internet businesses",
			MarketShare:    strPtr("17%"),
			KeyCompetitors: []string{"PayPal", "Adyen", "Square"},
		},
		Strengths:       []string{"Developer experience", "Global reach"},
		Weaknesses:      []string{"Pricing for small merchants"},
		RecentNews:      []model.NewsItem{{Title: "Stripe raises", Date: "2024-11-01", Summary: "Funding round", Source: "TechCrunch"}},
		PricingModel:    strPtr("Per transaction"),
		TechnologyStack: []string{"Ruby", "Go", "Java"},
		SocialMediaPresence: &model.SocialPresence{
			LinkedIn: strPtr("https://linkedin.com/company/stripe"),
			Twitter:  strPtr("https://twitter.com/stripe"),
		},
	}
}

func TestRenderFullRecord(t *testing.T) {
	html, err := Render(fullRecord())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Competitor Analysis - Stripe</title>")
	assert.Contains(t, html, "<p>2010</p>")
	assert.Contains(t, html, "San Francisco, CA")
	assert.Contains(t, html, "<strong>Market Share:</strong> 17%")
	assert.Equal(t, 2, strings.Count(html, `class="card product"`))
	assert.Equal(t, 3, strings.Count(html, `class="tag competitor"`))
	assert.Equal(t, 2, strings.Count(html, `class="list-item strength"`))
	assert.Equal(t, 1, strings.Count(html, `class="list-item weakness"`))
	assert.Equal(t, 1, strings.Count(html, `class="news-item"`))
	assert.Equal(t, 3, strings.Count(html, `class="tag tech"`))
	assert.Contains(t, html, "LinkedIn:")
	assert.Contains(t, html, "Twitter/X:")
	assert.NotContains(t, html, "Facebook:")
	assert.NotContains(t, html, `class="no-data"`)
}

func TestRenderPreservesOrder(t *testing.T) {
	html, err := Render(fullRecord())
	require.NoError(t, err)

	paypal := strings.Index(html, ">PayPal<")
	adyen := strings.Index(html, ">Adyen<")
	square := strings.Index(html, ">Square<")
	require.True(t, paypal > 0 && adyen > 0 && square > 0)
	assert.Less(t, paypal, adyen)
	assert.Less(t, adyen, square)
}

func TestRenderEmptyCollections(t *testing.T) {
	rec := &model.CompetitorRecord{CompanyName: "Acme", Strengths: []string{}}
	html, err := Render(rec)
	require.NoError(t, err)

	// 七个集合各自只有一个占位段落
	assert.Equal(t, 7, strings.Count(html, `class="no-data"`))
	for _, frag := range []string{
		`class="card product"`, `class="tag competitor"`, `class="list-item strength"`,
		`class="list-item weakness"`, `class="news-item"`, `class="tag tech"`, "<li>",
	} {
		assert.NotContains(t, html, frag)
	}
}

func TestRenderSkipsNullListElements(t *testing.T) {
	rec, err := parser.ParseRecord(`{
		"company_name": "Acme",
		"strengths": [null, "Fast support"],
		"products_services": [null],
		"recent_news": [null, {"title": "Acme ships v2"}]
	}`)
	require.NoError(t, err)

	html, err := Render(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, `class="list-item strength"`))
	assert.Contains(t, html, "Fast support")
	assert.NotContains(t, html, `class="card product"`)
	assert.Contains(t, html, "No product information available.")
	assert.Equal(t, 1, strings.Count(html, `class="news-item"`))
	assert.Contains(t, html, "Acme ships v2")
}

func TestRenderNullScalarsUsePlaceholder(t *testing.T) {
	html, err := Render(&model.CompetitorRecord{CompanyName: "Acme"})
	require.NoError(t, err)

	assert.Contains(t, html, "<p>N/A</p>")
	assert.Contains(t, html, "<strong>Market Share:</strong> N/A")
	assert.Contains(t, html, "<strong>Pricing Model:</strong> N/A")
	assert.Contains(t, html, "<strong>Analysis Date:</strong> N/A")
	assert.NotContains(t, html, "null")
	assert.NotContains(t, html, "<nil>")
}

func TestRenderNilRecord(t *testing.T) {
	html, err := Render(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "Unknown Company")
}

func TestRenderAllSectionHeadingsAlwaysPresent(t *testing.T) {
	for _, rec := range []*model.CompetitorRecord{fullRecord(), {}} {
		html, err := Render(rec)
		require.NoError(t, err)
		for _, heading := range []string{
			"Company Overview", "Products &amp; Services", "Market Position", "Key Competitors",
			"Strengths", "Weaknesses", "Recent News &amp; Updates", "Technology &amp; Pricing",
			"Technology Stack", "Social Media Presence",
		} {
			assert.Contains(t, html, heading)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(fullRecord())
	require.NoError(t, err)
	second, err := Render(fullRecord())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderEscapesModelText(t *testing.T) {
	rec := &model.CompetitorRecord{CompanyName: `<script>alert("x")</script>`}
	html, err := Render(rec)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderSocialEmptyValues(t *testing.T) {
	rec := &model.CompetitorRecord{SocialMediaPresence: &model.SocialPresence{Twitter: strPtr("  ")}}
	html, err := Render(rec)
	require.NoError(t, err)
	assert.Contains(t, html, "No social media information available.")
}

func TestRenderError(t *testing.T) {
	html := RenderError("https://a.com", errors.New("model returned prose"))
	assert.Contains(t, html, "Analysis Failed")
	assert.Contains(t, html, "https://a.com")
	assert.Contains(t, html, "model returned prose")
}
