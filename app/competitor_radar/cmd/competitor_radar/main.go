package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
)

var (
	// cfgFile 配置文件路径
	cfgFile string
	// outDir 报告输出目录，覆盖配置中的 output.dir
	outDir string

	rootCmd = &cobra.Command{
		Use:           "competitor_radar",
		Short:         "Generate competitor analysis reports with an LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "app/competitor_radar/configs/config.yaml", "config path, eg: --config config.yaml")
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "", "directory for generated reports (default: output.dir from config)")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newSampleCommand())
}

// loadConfig 加载 .env 与配置文件并初始化日志
func loadConfig() (*config.Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("无法加载配置文件: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置错误: %w", err)
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
