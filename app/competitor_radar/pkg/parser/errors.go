package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// PreviewLimit 错误信息中原始响应预览的最大字符数
const PreviewLimit = 500

var (
	// ErrNoJSON 响应中找不到可解析的 JSON
	ErrNoJSON = errors.New("no valid JSON found in response")
	// ErrNotArray 批量模式下顶层值不是 JSON 数组
	ErrNotArray = errors.New("response is not a JSON array")
	// ErrNotObject 单个模式下顶层值不是 JSON 对象
	ErrNotObject = errors.New("response is not a JSON object")
	// ErrSchema JSON 结构与竞品记录不符
	ErrSchema = errors.New("response does not match competitor record schema")
)

// ParseError 解析失败，附带原始响应预览便于排查
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse agent response: %v (raw response preview: %q)", e.Err, e.Preview)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(raw string, err error) *ParseError {
	return &ParseError{Preview: Preview(raw, PreviewLimit), Err: err}
}

// Preview 按字符截断文本，超出时追加省略号
func Preview(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
