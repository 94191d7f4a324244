// Package companylist 读取按行记录的竞品清单，每行格式为 url[,name]，# 开头为注释。
package companylist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

// Sample 示例清单
const Sample = `# Payment Processing Competitors
https://www.stripe.com,Stripe
https://www.square.com,Square
https://www.paypal.com,PayPal

# E-commerce Platforms
https://www.shopify.com,Shopify
https://www.woocommerce.com,WooCommerce
`

// Parse 解析清单内容
func Parse(r io.Reader) ([]model.Company, error) {
	var companies []model.Company
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		website, name, _ := strings.Cut(line, ",")
		website = strings.TrimSpace(website)
		if website == "" {
			return nil, fmt.Errorf("line %d: missing website", lineNo)
		}
		companies = append(companies, model.Company{
			Website: website,
			Name:    strings.TrimSpace(name),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read company list: %w", err)
	}
	return companies, nil
}

// ParseLine 解析单个 url[,name] 参数
func ParseLine(s string) (model.Company, error) {
	companies, err := Parse(strings.NewReader(s))
	if err != nil {
		return model.Company{}, err
	}
	if len(companies) != 1 {
		return model.Company{}, fmt.Errorf("invalid company %q, want url[,name]", s)
	}
	return companies[0], nil
}

// Load 从文件读取清单
func Load(path string) ([]model.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// WriteSample 文件不存在时写入示例清单，返回是否新建
func WriteSample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(Sample), 0o644); err != nil {
		return false, fmt.Errorf("write sample company list: %w", err)
	}
	return true, nil
}
