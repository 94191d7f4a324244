package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

func TestSingle(t *testing.T) {
	p := Single(model.Company{Website: "https://stripe.com", Name: "Stripe"}, "2024-12-01", "")

	assert.Contains(t, p, "Analyze the competitor at: https://stripe.com")
	assert.Contains(t, p, "Company Name: Stripe")
	assert.Contains(t, p, "Current date: 2024-12-01")
	assert.NotContains(t, p, "Web research notes")
}

func TestSingleWithoutNameWithResearch(t *testing.T) {
	p := Single(model.Company{Website: "https://stripe.com"}, "2024-12-01", "1. Stripe launches X")

	assert.NotContains(t, p, "Company Name:")
	assert.Contains(t, p, "Web research notes")
	assert.Contains(t, p, "1. Stripe launches X")
}

func TestBatch(t *testing.T) {
	p := Batch([]model.Company{
		{Website: "https://a.com", Name: "A"},
		{Website: "https://b.com"},
	}, "2024-12-01", nil)

	assert.Contains(t, p, "Analyze these 2 competitors")
	assert.Contains(t, p, "1. A - https://a.com\n")
	assert.Contains(t, p, "2. https://b.com - https://b.com\n")
	assert.Contains(t, p, "JSON ARRAY")
	assert.True(t, strings.HasSuffix(p, "Current date: 2024-12-01"))
	assert.NotContains(t, p, "Web research notes")
}

func TestBatchWithResearchNotes(t *testing.T) {
	p := Batch([]model.Company{
		{Website: "https://a.com", Name: "A"},
		{Website: "https://b.com", Name: "B"},
	}, "2024-12-01", []string{"", "1. B pricing page"})

	assert.Contains(t, p, "Web research notes")
	assert.Contains(t, p, "[2. B]\n1. B pricing page\n")
	assert.NotContains(t, p, "[1. A]")
	assert.True(t, strings.HasSuffix(p, "Current date: 2024-12-01"))
}

func TestSystemInstructionContainsSchema(t *testing.T) {
	s := SystemInstruction()
	for _, field := range []string{"company_name", "founded_year", "key_competitors", "social_media_presence"} {
		assert.Contains(t, s, field)
	}
}
