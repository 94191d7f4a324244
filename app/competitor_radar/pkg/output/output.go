// Package output 负责报告文件名推导与落盘。
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFilename 由公司名推导文件名："Stripe Inc" -> "stripe_inc_analysis.html"。
// 未提供公司名时传入的是网址，去掉协议前缀："https://a.com" -> "a.com_analysis.html"
func DefaultFilename(companyName string) string {
	name := strings.ToLower(strings.TrimSpace(companyName))
	if _, rest, ok := strings.Cut(name, "://"); ok {
		name = rest
	}
	name = strings.TrimRight(name, "/")
	name = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_").Replace(name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "competitor"
	}
	return name + "_analysis.html"
}

// UniqueFilenames 为每个公司名推导文件名，重名时依次追加 _2、_3 ...
func UniqueFilenames(companyNames []string) []string {
	names := make([]string, len(companyNames))
	used := make(map[string]bool, len(companyNames))
	for i, c := range companyNames {
		name := DefaultFilename(c)
		base := strings.TrimSuffix(name, ".html")
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d.html", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// TimestampFilename 未指定文件名时按时间生成
func TimestampFilename(t time.Time) string {
	return fmt.Sprintf("competitor_analysis_%s.html", t.Format("20060102_150405"))
}

// Save 将 HTML 写入 dir/filename，返回最终路径
func Save(dir, filename, html string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(html); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, f.Close()
}
