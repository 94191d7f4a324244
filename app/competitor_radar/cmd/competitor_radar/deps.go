package main

import (
	"context"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/engine"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/llm"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/prompt"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/research"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/search/factory"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/storage"
)

// newEngine 按配置组装引擎，返回的 cleanup 负责关闭数据库连接
func newEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, func(), error) {
	gen, err := llm.NewChatGenerator(ctx, cfg.LLM, cfg.Concurrency, prompt.SystemInstruction())
	if err != nil {
		return nil, nil, err
	}
	logger.Log.Infof("限流器已配置: RPM=%d, Burst=%d", cfg.Concurrency.RPM, cfg.Concurrency.QPS)

	var opts []engine.Option

	searcher, err := factory.NewSearcher(cfg.Search)
	if err != nil {
		return nil, nil, err
	}
	if searcher != nil {
		opts = append(opts, engine.WithResearcher(research.New(searcher, research.FetchReadable, cfg.Research)))
		logger.Log.Infof("已启用网页调研: %s", cfg.Search.Provider)
	}

	cleanup := func() {}
	if cfg.DB.Enabled() {
		store, err := storage.NewStorage(ctx, cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅生成 HTML 文件。", err)
		} else {
			opts = append(opts, engine.WithArchiver(store))
			cleanup = func() { store.Close() }
			logger.Log.Info("已成功连接到数据库")
		}
	} else {
		logger.Log.Info("未配置数据库信息，跳过报告归档")
	}

	return engine.NewEngine(gen, opts...), cleanup, nil
}
