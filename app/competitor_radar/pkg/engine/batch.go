package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/parser"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/prompt"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/render"
)

// ErrBatchMismatch 批量响应的条目数与请求不一致
var ErrBatchMismatch = errors.New("batch response does not match requested companies")

// Mode 批量分析实际走过的路径
type Mode string

const (
	// ModeBatch 一次调用完成全部分析
	ModeBatch Mode = "batch"
	// ModeDegraded 批量解析失败，逐个重新分析
	ModeDegraded Mode = "degraded"
)

// Report 单个竞品的输出；Err 非空时 HTML 为错误页
type Report struct {
	Company model.Company
	Key     string
	HTML    string
	Err     error
}

// BatchOutcome 批量分析结果，每个输入恰好对应一个 Report，顺序与输入一致
type BatchOutcome struct {
	RunID   uuid.UUID
	Mode    Mode
	Cause   error // 降级原因，仅 ModeDegraded 时非空
	Reports []Report
}

// Map 展示名 -> HTML。展示名重复时后出现的覆盖前者
func (o *BatchOutcome) Map() map[string]string {
	m := make(map[string]string, len(o.Reports))
	for _, r := range o.Reports {
		m[r.Key] = r.HTML
	}
	return m
}

// Failed 返回失败条目数
func (o *BatchOutcome) Failed() int {
	n := 0
	for _, r := range o.Reports {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// AnalyzeBatch 一次调用分析全部竞品；批量响应无法解析时降级为逐个分析。
// 只有批量请求本身失败才返回错误，降级后单个竞品的失败会被替换为错误页。
func (e *Engine) AnalyzeBatch(ctx context.Context, companies []model.Company) (*BatchOutcome, error) {
	if len(companies) == 0 {
		return nil, ErrNoCompanies
	}

	out := &BatchOutcome{RunID: uuid.New()}
	log := logger.Log.WithFields(logrus.Fields{"run_id": out.RunID, "companies": len(companies)})
	log.Info("开始批量竞品分析")

	notes := e.researchAll(ctx, companies)
	text, err := e.gen.Generate(ctx, prompt.Batch(companies, e.today(), notes))
	if err != nil {
		return nil, fmt.Errorf("batch generate: %w", err)
	}

	records, err := parser.ParseBatch(text)
	if err == nil {
		records, err = correspond(companies, records)
	}
	if err != nil {
		log.Warnf("批量解析失败，降级为逐个分析: %v", err)
		out.Mode = ModeDegraded
		out.Cause = err
		out.Reports = e.fallback(ctx, companies, notes)
	} else {
		out.Mode = ModeBatch
		out.Reports = renderAll(companies, records)
	}

	e.archiveRun(ctx, out.RunID, string(out.Mode), out.Reports)
	log.WithField("mode", out.Mode).Infof("批量竞品分析完成，失败 %d 个", out.Failed())
	return out, nil
}

// fallback 按输入顺序逐个分析，单个失败不会中断。notes 为批量阶段已收集的调研笔记
func (e *Engine) fallback(ctx context.Context, companies []model.Company, notes []string) []Report {
	reports := make([]Report, 0, len(companies))
	for i, c := range companies {
		key := c.DisplayName()
		logger.Log.Infof("[%d/%d] 逐个分析 %s", i+1, len(companies), key)

		html, err := e.analyzeOne(ctx, c, notes[i])
		if err != nil {
			logger.Log.Errorf("竞品分析失败 [%s]: %v", key, err)
			html = render.RenderError(identify(c), err)
		}
		reports = append(reports, Report{Company: c, Key: key, HTML: html, Err: err})
	}
	return reports
}

// identify 错误页中展示的公司标识
func identify(c model.Company) string {
	if strings.TrimSpace(c.Name) == "" {
		return c.DisplayName()
	}
	return fmt.Sprintf("%s (%s)", c.DisplayName(), strings.TrimSpace(c.Website))
}

func renderAll(companies []model.Company, records []model.CompetitorRecord) []Report {
	reports := make([]Report, 0, len(companies))
	for i, c := range companies {
		key := c.DisplayName()
		html, err := render.Render(&records[i])
		if err != nil {
			html = render.RenderError(identify(c), err)
		}
		reports = append(reports, Report{Company: c, Key: key, HTML: html, Err: err})
	}
	return reports
}

// correspond 将批量响应的条目对应到请求的公司，返回与 companies 同序的记录。
// 先按公司名匹配，再按网站域名匹配，剩余的按位置补齐；条目数不一致视为失败。
func correspond(companies []model.Company, records []model.CompetitorRecord) ([]model.CompetitorRecord, error) {
	if len(records) != len(companies) {
		return nil, fmt.Errorf("%w: got %d entries for %d companies", ErrBatchMismatch, len(records), len(companies))
	}

	n := len(companies)
	assigned := make([]int, n)
	used := make([]bool, n)
	for i := range assigned {
		assigned[i] = -1
	}

	match := func(same func(c model.Company, r model.CompetitorRecord) bool) {
		for i, c := range companies {
			if assigned[i] >= 0 {
				continue
			}
			for j, r := range records {
				if !used[j] && same(c, r) {
					assigned[i], used[j] = j, true
					break
				}
			}
		}
	}

	match(func(c model.Company, r model.CompetitorRecord) bool {
		name := normalizeName(r.CompanyName)
		return name != "" && (name == normalizeName(c.Name) || name == normalizeName(c.DisplayName()))
	})
	match(func(c model.Company, r model.CompetitorRecord) bool {
		host := model.Host(r.Website)
		return host != "" && host == model.Host(c.Website)
	})

	// 剩余条目按位置补齐，优先同位置
	for i := range companies {
		if assigned[i] >= 0 {
			continue
		}
		if !used[i] {
			assigned[i], used[i] = i, true
			continue
		}
		for j := range records {
			if !used[j] {
				assigned[i], used[j] = j, true
				break
			}
		}
	}

	out := make([]model.CompetitorRecord, n)
	for i, j := range assigned {
		out[i] = records[j]
	}
	return out, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
