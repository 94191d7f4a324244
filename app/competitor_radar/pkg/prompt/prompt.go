// Package prompt 组装发送给模型的竞品分析指令。
package prompt

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

// DateLayout 提示词中的日期格式
const DateLayout = "2006-01-02"

const schemaText = `{
  "company_name": "string",
  "website": "string",
  "analysis_date": "string (ISO format: YYYY-MM-DD)",
  "overview": {
    "description": "string - brief company description",
    "founded_year": "integer or null - year company was founded",
    "headquarters": "string or null - location of headquarters",
    "size": "string or null - number of employees"
  },
  "products_services": [
    {"name": "string - product/service name", "description": "string - what it does", "category": "string - product category"}
  ],
  "market_position": {
    "target_market": "string - primary market segment",
    "market_share": "string or null - market share percentage if available",
    "key_competitors": ["string - competitor names"]
  },
  "strengths": ["string - competitive advantages"],
  "weaknesses": ["string - competitive disadvantages"],
  "recent_news": [
    {"title": "string - news headline", "date": "string - ISO format date", "summary": "string - brief summary", "source": "string - news source"}
  ],
  "pricing_model": "string or null - pricing strategy",
  "technology_stack": ["string - technologies used"],
  "social_media_presence": {
    "linkedin": "string or null - LinkedIn URL",
    "twitter": "string or null - Twitter/X URL",
    "facebook": "string or null - Facebook URL"
  }
}`

// SystemInstruction 竞品分析师的系统指令，包含输出 JSON 结构与规则
func SystemInstruction() string {
	return `You are an expert competitor analysis researcher. Your job is to provide
structured, factual information about companies.

INFORMATION TO GATHER:
- Company overview and description
- Products and services offered
- Market position and key competitors
- Recent news and updates (last 6 months)
- Pricing model and technology stack
- Social media presence

OUTPUT FORMAT:
You must return ONLY valid JSON matching this exact schema:

` + schemaText + `

CRITICAL RULES:
- Output ONLY valid JSON - no markdown, no code blocks, no explanations
- Use null for missing data - NEVER guess or fabricate information
- Focus ONLY on the target company - ignore unrelated companies
- All dates must be in ISO format (YYYY-MM-DD)
- If information is not found, use null or empty arrays []`
}

// Single 单个竞品的分析请求。research 为可选的网页调研摘要。
func Single(c model.Company, date string, research string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the competitor at: %s\n", strings.TrimSpace(c.Website))
	if name := strings.TrimSpace(c.Name); name != "" {
		fmt.Fprintf(&sb, "Company Name: %s\n", name)
	}
	sb.WriteString("\nReturn structured JSON data for this company.\n")
	fmt.Fprintf(&sb, "Current date: %s\n", date)

	if research = strings.TrimSpace(research); research != "" {
		sb.WriteString("\nWeb research notes (use them as sources, ignore content about other companies):\n")
		sb.WriteString(research)
		sb.WriteString("\n")
	}

	sb.WriteString("\nFocus on gathering accurate, verifiable information from reliable sources.")
	return sb.String()
}

// Batch 多个竞品合并为一次请求，要求按输入顺序返回 JSON 数组。
// notes 与 companies 按下标对应，可为 nil 或包含空串。
func Batch(companies []model.Company, date string, notes []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze these %d competitors and return a JSON array with complete analysis for each.\n\n", len(companies))
	sb.WriteString("Companies to analyze:\n")
	for i, c := range companies {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, c.DisplayName(), strings.TrimSpace(c.Website))
	}

	header := false
	for i, c := range companies {
		if i >= len(notes) || strings.TrimSpace(notes[i]) == "" {
			continue
		}
		if !header {
			sb.WriteString("\nWeb research notes (use each block only for the company it names):\n")
			header = true
		}
		fmt.Fprintf(&sb, "\n[%d. %s]\n%s\n", i+1, c.DisplayName(), strings.TrimSpace(notes[i]))
	}

	sb.WriteString(`
Return a JSON ARRAY (not an object) where each element is a complete competitor analysis.
Each element must follow the exact schema provided in your instructions.
Keep the elements in the same order as the list above and use the listed name as "company_name".

Output format:
[
  {...complete data for company 1...},
  {...complete data for company 2...}
]

CRITICAL:
- Output ONLY the JSON array, no markdown, no explanations
- Each company must have complete data
- Maintain consistent structure across all entries
`)
	fmt.Fprintf(&sb, "\nCurrent date: %s", date)
	return sb.String()
}
