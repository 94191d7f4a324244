package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/companylist"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/engine"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/output"
)

func newBatchCommand() *cobra.Command {
	var (
		entries  []string
		listFile string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Analyze several competitors with a single model call",
		Long: `Analyze several competitors with one combined request. When the combined
response cannot be parsed, every company is analyzed on its own and failures
are written as error pages.`,
		Example: `  competitor_radar batch --company https://www.stripe.com,Stripe --company https://www.square.com,Square
  competitor_radar batch --file competitors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := collectCompanies(entries, listFile)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			eng, cleanup, err := newEngine(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := eng.AnalyzeBatch(ctx, companies)
			if err != nil {
				return err
			}
			if out.Mode == engine.ModeDegraded {
				logger.Log.Warnf("批量模式已降级为逐个分析: %v", out.Cause)
			}

			paths, err := saveReports(cfg.Output.Dir, out.Reports)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			logger.Log.Infof("✅ 共生成 %d 份报告 (mode=%s, failed=%d)", len(out.Reports), out.Mode, out.Failed())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&entries, "company", "c", nil, "competitor as url[,name], repeatable")
	cmd.Flags().StringVarP(&listFile, "file", "f", "", "file with one url[,name] per line, # for comments")
	return cmd
}

// saveReports 逐个保存报告，展示名重复时文件名追加序号
func saveReports(dir string, reports []engine.Report) ([]string, error) {
	keys := make([]string, len(reports))
	for i, r := range reports {
		keys[i] = r.Key
	}

	paths := make([]string, 0, len(reports))
	for i, name := range output.UniqueFilenames(keys) {
		path, err := output.Save(dir, name, reports[i].HTML)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// collectCompanies 合并命令行与清单文件中的公司
func collectCompanies(entries []string, listFile string) ([]model.Company, error) {
	var companies []model.Company
	for _, e := range entries {
		c, err := companylist.ParseLine(e)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	if listFile != "" {
		fromFile, err := companylist.Load(listFile)
		if err != nil {
			return nil, fmt.Errorf("load company list: %w", err)
		}
		companies = append(companies, fromFile...)
	}
	if len(companies) == 0 {
		return nil, errors.New("no companies given, use --company or --file")
	}
	return companies, nil
}
