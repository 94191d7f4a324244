package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
)

// Storage 报告归档，只写不读
type Storage struct {
	db *sql.DB
}

// NewStorage 连接 PostgreSQL 并初始化表结构
func NewStorage(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := New(db)
	if err := s.InitSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// New 基于已有连接创建 Storage
func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// InitSchema 建表
func (s *Storage) InitSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id UUID PRIMARY KEY,
			mode TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS competitor_reports (
			id SERIAL PRIMARY KEY,
			run_id UUID REFERENCES analysis_runs(id),
			company TEXT NOT NULL,
			website TEXT,
			html TEXT,
			error TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun 记录一次分析运行
func (s *Storage) SaveRun(ctx context.Context, runID uuid.UUID, mode string, createdAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analysis_runs (id, mode, created_at) VALUES ($1, $2, $3)`,
		runID, mode, createdAt)
	if err != nil {
		return fmt.Errorf("save run %s: %w", runID, err)
	}
	return nil
}

// SaveReport 保存单个竞品的报告，失败的分析只记录错误信息
func (s *Storage) SaveReport(ctx context.Context, runID uuid.UUID, c model.Company, html string, reportErr error) error {
	var errText sql.NullString
	if reportErr != nil {
		errText = sql.NullString{String: sanitize(reportErr.Error()), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO competitor_reports (run_id, company, website, html, error) VALUES ($1, $2, $3, $4, $5)`,
		runID, sanitize(c.DisplayName()), sanitize(c.Website), sanitize(html), errText)
	if err != nil {
		return fmt.Errorf("save report %s: %w", c.DisplayName(), err)
	}
	return nil
}

// sanitize 移除无效的 UTF-8 字符与 NULL 字节，PostgreSQL 文本字段不接受它们
func sanitize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.ReplaceAll(s, "\x00", "")
}
