package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/model"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/output"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		website  string
		name     string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a single competitor",
		Example: `  competitor_radar analyze --url https://www.stripe.com --name Stripe
  competitor_radar analyze --url https://www.stripe.com --out stripe_analysis.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			html, err := eng.AnalyzeCompetitor(ctx, model.Company{Website: website, Name: name})
			if err != nil {
				return err
			}

			if filename == "" {
				filename = output.TimestampFilename(time.Now())
			}
			path, err := output.Save(cfg.Output.Dir, filename, html)
			if err != nil {
				return err
			}
			logger.Log.Infof("✅ 报告已保存: %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&website, "url", "u", "", "company website URL (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "company name (optional)")
	cmd.Flags().StringVarP(&filename, "out", "o", "", "report filename (default: competitor_analysis_<timestamp>.html)")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
