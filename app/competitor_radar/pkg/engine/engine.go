package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/llm"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/parser"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/prompt"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/render"
)

// ErrNoCompanies 批量分析未提供任何公司
var ErrNoCompanies = errors.New("no companies provided")

// Researcher 为单个竞品收集网页资料
type Researcher interface {
	Collect(ctx context.Context, c model.Company) (string, error)
}

// Archiver 报告归档
type Archiver interface {
	SaveRun(ctx context.Context, runID uuid.UUID, mode string, createdAt time.Time) error
	SaveReport(ctx context.Context, runID uuid.UUID, c model.Company, html string, reportErr error) error
}

// Engine 竞品分析引擎：提示词 -> 模型 -> 解析 -> 渲染
type Engine struct {
	gen        llm.Generator
	researcher Researcher
	archive    Archiver
	now        func() time.Time
}

// Option 引擎可选项
type Option func(*Engine)

// WithResearcher 启用网页调研
func WithResearcher(r Researcher) Option {
	return func(e *Engine) { e.researcher = r }
}

// WithArchiver 启用报告归档
func WithArchiver(a Archiver) Option {
	return func(e *Engine) { e.archive = a }
}

// WithClock 替换时钟，提示词中的当前日期取自该时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine 创建引擎实例
func NewEngine(gen llm.Generator, opts ...Option) *Engine {
	e := &Engine{gen: gen, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeCompetitor 分析单个竞品并返回 HTML 报告。解析失败时整个分析失败。
func (e *Engine) AnalyzeCompetitor(ctx context.Context, c model.Company) (string, error) {
	runID := uuid.New()
	log := logger.Log.WithFields(logrus.Fields{"run_id": runID, "company": c.DisplayName()})
	log.Info("开始单个竞品分析")

	html, err := e.analyzeOne(ctx, c, e.research(ctx, c))
	if err != nil {
		log.Errorf("竞品分析失败: %v", err)
		return "", err
	}

	e.archiveRun(ctx, runID, "single", []Report{{Company: c, Key: c.DisplayName(), HTML: html}})
	log.Info("竞品分析完成")
	return html, nil
}

// research 收集调研笔记，失败时只记录日志
func (e *Engine) research(ctx context.Context, c model.Company) string {
	if e.researcher == nil {
		return ""
	}
	notes, err := e.researcher.Collect(ctx, c)
	if err != nil {
		logger.Log.Warnf("网页调研失败 [%s]: %v", c.DisplayName(), err)
	}
	return notes
}

// researchAll 按输入顺序为每个竞品收集调研笔记，与 companies 等长
func (e *Engine) researchAll(ctx context.Context, companies []model.Company) []string {
	notes := make([]string, len(companies))
	if e.researcher == nil {
		return notes
	}
	for i, c := range companies {
		notes[i] = e.research(ctx, c)
	}
	return notes
}

// analyzeOne 单个竞品的生成、解析与渲染，不做归档
func (e *Engine) analyzeOne(ctx context.Context, c model.Company, notes string) (string, error) {
	text, err := e.gen.Generate(ctx, prompt.Single(c, e.today(), notes))
	if err != nil {
		return "", fmt.Errorf("generate analysis for %s: %w", c.DisplayName(), err)
	}

	rec, err := parser.ParseRecord(text)
	if err != nil {
		return "", err
	}

	return render.Render(rec)
}

func (e *Engine) today() string {
	return e.now().Format(prompt.DateLayout)
}

func (e *Engine) archiveRun(ctx context.Context, runID uuid.UUID, mode string, reports []Report) {
	if e.archive == nil {
		return
	}
	if err := e.archive.SaveRun(ctx, runID, mode, e.now()); err != nil {
		logger.Log.Errorf("保存运行记录失败: %v", err)
		return
	}
	for _, r := range reports {
		if err := e.archive.SaveReport(ctx, runID, r.Company, r.HTML, r.Err); err != nil {
			logger.Log.Errorf("保存报告失败 [%s]: %v", r.Key, err)
		}
	}
}
