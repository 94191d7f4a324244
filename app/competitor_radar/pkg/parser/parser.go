// Package parser 从模型的原始文本响应中提取 JSON 并解码为竞品记录。
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// Extract 从响应文本中提取一个 JSON 值。
// 依次尝试：整段直接解析；```json 或 ``` 代码块中的内容；去掉首尾空白后的整段文本。
func Extract(text string) (json.RawMessage, error) {
	if raw, err := decode(text); err == nil {
		return raw, nil
	}

	candidate := text
	if i := strings.Index(text, jsonFence); i >= 0 {
		candidate = between(text[i+len(jsonFence):])
	} else if i := strings.Index(text, fence); i >= 0 {
		candidate = between(text[i+len(fence):])
	}

	raw, err := decode(strings.TrimSpace(candidate))
	if err != nil {
		return nil, newParseError(text, fmt.Errorf("%w: %w", ErrNoJSON, err))
	}
	return raw, nil
}

// between 返回下一个 ``` 之前的内容；没有闭合标记时返回剩余全部
func between(s string) string {
	if j := strings.Index(s, fence); j >= 0 {
		return s[:j]
	}
	return s
}

func decode(s string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(raw), nil
}

// ParseRecord 解析单个竞品的响应
func ParseRecord(text string) (*model.CompetitorRecord, error) {
	raw, err := Extract(text)
	if err != nil {
		return nil, err
	}
	if !startsWith(raw, '{') {
		return nil, newParseError(text, ErrNotObject)
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		return nil, newParseError(text, err)
	}
	return rec, nil
}

// ParseBatch 解析批量响应，顶层必须是 JSON 数组
func ParseBatch(text string) ([]model.CompetitorRecord, error) {
	raw, err := Extract(text)
	if err != nil {
		return nil, err
	}
	if !startsWith(raw, '[') {
		return nil, newParseError(text, ErrNotArray)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, newParseError(text, err)
	}

	records := make([]model.CompetitorRecord, 0, len(items))
	for i, item := range items {
		if !startsWith(item, '{') {
			return nil, newParseError(text, fmt.Errorf("element %d: %w", i, ErrNotObject))
		}
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, newParseError(text, fmt.Errorf("element %d: %w", i, err))
		}
		records = append(records, *rec)
	}
	return records, nil
}

func decodeRecord(raw []byte) (*model.CompetitorRecord, error) {
	if err := validateRecord(raw); err != nil {
		return nil, err
	}
	var rec model.CompetitorRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode competitor record: %w", err)
	}
	return &rec, nil
}

func startsWith(raw []byte, c byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == c
}
