package parser

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with commentary", "Here is the analysis:\n```json\n{\"a\":1}\n```\nLet me know!", `{"a":1}`},
		{"unclosed fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"surrounding whitespace", "\n\n  {\"a\":1}  \n", `{"a":1}`},
		{"array", "```json\n[{\"a\":1},{\"a\":2}]\n```", `[{"a":1},{"a":2}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Extract(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestExtractNonJSON(t *testing.T) {
	in := "Sorry, I could not find any information about that company."
	_, err := Extract(in)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, ErrNoJSON)
	assert.Equal(t, in, perr.Preview)
	assert.Contains(t, err.Error(), "could not find any information")

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestExtractPreviewIsBounded(t *testing.T) {
	in := strings.Repeat("不是 JSON ", 200)
	_, err := Extract(in)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.True(t, strings.HasSuffix(perr.Preview, "..."))
	assert.Equal(t, PreviewLimit+3, len([]rune(perr.Preview)))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", Preview("abc", 5))
	assert.Equal(t, "ab...", Preview("abcdef", 2))
	assert.Equal(t, "竞品...", Preview("竞品分析", 2))
}

const stripeJSON = `{
  "company_name": "Stripe",
  "website": "https://stripe.com",
  "analysis_date": "2024-12-01",
  "overview": {"description": "Payments infrastructure", "founded_year": 2010, "headquarters": null, "size": "5000+"},
  "products_services": [{"name": "Payments", "description": "Online payments", "category": "Fintech"}],
  "market_position": {"target_market": "Internet businesses", "market_share": null, "key_competitors": ["Adyen", "PayPal"]},
  "strengths": ["Developer experience"],
  "weaknesses": [],
  "recent_news": null,
  "pricing_model": null,
  "technology_stack": ["Ruby", "Go"],
  "social_media_presence": {"linkedin": "https://linkedin.com/company/stripe", "twitter": null, "facebook": null}
}`

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord("```json\n" + stripeJSON + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Stripe", rec.CompanyName)
	require.NotNil(t, rec.Overview.FoundedYear)
	assert.Equal(t, model.Year(2010), *rec.Overview.FoundedYear)
	assert.Nil(t, rec.Overview.Headquarters)
	assert.Nil(t, rec.PricingModel)
	assert.Nil(t, rec.RecentNews)
	assert.Empty(t, rec.Weaknesses)
	assert.Equal(t, []string{"Adyen", "PayPal"}, rec.MarketPosition.KeyCompetitors)
	require.NotNil(t, rec.SocialMediaPresence)
	assert.Nil(t, rec.SocialMediaPresence.Twitter)
}

func TestParseRecordMinimalObject(t *testing.T) {
	rec, err := ParseRecord(`{"company_name": "Acme"}`)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.CompanyName)
	assert.Nil(t, rec.SocialMediaPresence)
}

func TestParseRecordFoundedYearWrittenAsFloat(t *testing.T) {
	rec, err := ParseRecord(`{"company_name": "A", "overview": {"founded_year": 2010.0}}`)
	require.NoError(t, err)
	require.NotNil(t, rec.Overview.FoundedYear)
	assert.Equal(t, model.Year(2010), *rec.Overview.FoundedYear)

	_, err = ParseRecord(`{"company_name": "A", "overview": {"founded_year": 2010.5}}`)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestParseRecordNullListElements(t *testing.T) {
	rec, err := ParseRecord(`{"company_name": "A", "strengths": [null, "x"], "products_services": [null]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "x"}, rec.Strengths)
	require.Len(t, rec.ProductsServices, 1)
	assert.True(t, rec.ProductsServices[0].Blank())
}

func TestParseRecordRejectsArray(t *testing.T) {
	_, err := ParseRecord(`[{"company_name": "Acme"}]`)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestParseRecordSchemaMismatch(t *testing.T) {
	_, err := ParseRecord(`{"company_name": "Acme", "overview": {"founded_year": "long ago"}}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), "founded_year")
}

func TestParseBatch(t *testing.T) {
	text := "```json\n[" + stripeJSON + `, {"company_name": "Square"}]` + "\n```"
	records, err := ParseBatch(text)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Stripe", records[0].CompanyName)
	assert.Equal(t, "Square", records[1].CompanyName)
}

func TestParseBatchTypeErrorIsDistinctFromSyntaxError(t *testing.T) {
	_, typeErr := ParseBatch(`{"company_name": "Stripe"}`)
	require.Error(t, typeErr)
	assert.ErrorIs(t, typeErr, ErrNotArray)
	assert.NotErrorIs(t, typeErr, ErrNoJSON)

	_, syntaxErr := ParseBatch(`[{"company_name": "Stripe"`)
	require.Error(t, syntaxErr)
	assert.ErrorIs(t, syntaxErr, ErrNoJSON)
	assert.NotErrorIs(t, syntaxErr, ErrNotArray)

	_, scalarErr := ParseBatch(`42`)
	assert.ErrorIs(t, scalarErr, ErrNotArray)
}

func TestParseBatchElementNotObject(t *testing.T) {
	_, err := ParseBatch(`[{"company_name": "Stripe"}, "Square"]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotObject)
	assert.Contains(t, err.Error(), "element 1")
}
