package parser

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func nullable(t string) map[string]interface{} {
	return map[string]interface{}{"type": []string{t, "null"}}
}

// nullableArrayOf 数组本身与其中的元素都允许为 null
func nullableArrayOf(items map[string]interface{}) map[string]interface{} {
	elem := make(map[string]interface{}, len(items))
	for k, v := range items {
		elem[k] = v
	}
	if t, ok := elem["type"].(string); ok {
		elem["type"] = []string{t, "null"}
	}
	return map[string]interface{}{"type": []string{"array", "null"}, "items": elem}
}

func nullableObject(props map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": []string{"object", "null"}, "properties": props}
}

// recordSchema 竞品记录的 JSON Schema，所有字段均允许缺失或为 null
var recordSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"company_name":  nullable("string"),
		"website":       nullable("string"),
		"analysis_date": nullable("string"),
		"overview": nullableObject(map[string]interface{}{
			"description":  nullable("string"),
			"founded_year": nullable("integer"),
			"headquarters": nullable("string"),
			"size":         nullable("string"),
		}),
		"products_services": nullableArrayOf(map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name":        nullable("string"),
				"description": nullable("string"),
				"category":    nullable("string"),
			},
		}),
		"market_position": nullableObject(map[string]interface{}{
			"target_market":   nullable("string"),
			"market_share":    nullable("string"),
			"key_competitors": nullableArrayOf(map[string]interface{}{"type": "string"}),
		}),
		"strengths":  nullableArrayOf(map[string]interface{}{"type": "string"}),
		"weaknesses": nullableArrayOf(map[string]interface{}{"type": "string"}),
		"recent_news": nullableArrayOf(map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title":   nullable("string"),
				"date":    nullable("string"),
				"summary": nullable("string"),
				"source":  nullable("string"),
			},
		}),
		"pricing_model":    nullable("string"),
		"technology_stack": nullableArrayOf(map[string]interface{}{"type": "string"}),
		"social_media_presence": nullableObject(map[string]interface{}{
			"linkedin": nullable("string"),
			"twitter":  nullable("string"),
			"facebook": nullable("string"),
		}),
	},
}

var compiledSchema = mustCompile(recordSchema)

func mustCompile(s map[string]interface{}) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid competitor record schema: %v", err))
	}
	return schema
}

// validateRecord 校验单条记录的字段类型
func validateRecord(raw []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
