package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Research    ResearchConfig    `yaml:"research"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	DB          DBConfig          `yaml:"db"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL     string   `yaml:"base_url"`
	APIKey      string   `yaml:"api_key"`
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`
	Timeout     int      `yaml:"timeout"` // 秒
}

// TimeoutDuration 返回请求超时时间，未配置时为 0（不限制）
func (c LLMConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DBConfig 数据库相关配置
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Enabled 配置了数据库地址时才启用报告归档
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

// DSN 返回 lib/pq 连接串
func (c DBConfig) DSN() string {
	port := c.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, port, c.User, c.Password, c.Name)
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider string        `yaml:"provider"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// ResearchConfig 网页调研配置
type ResearchConfig struct {
	MaxResults   int `yaml:"max_results"`
	MaxSnippet   int `yaml:"max_snippet"`    // 单条摘要最大字符数
	FetchTimeout int `yaml:"fetch_timeout"` // 抓取原文超时（秒）
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 调用频率控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// OutputConfig 报告输出配置
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// 环境变量覆盖项
const (
	EnvLLMAPIKey    = "COMPETITOR_LLM_API_KEY"
	EnvLLMBaseURL   = "COMPETITOR_LLM_BASE_URL"
	EnvLLMModel     = "COMPETITOR_LLM_MODEL"
	EnvTavilyAPIKey = "TAVILY_API_KEY"
)

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse 解析 YAML 配置并应用环境变量覆盖与默认值
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLLMAPIKey); ok && v != "" {
		c.LLM.APIKey = v
	}
	if v, ok := lookup(EnvLLMBaseURL); ok && v != "" {
		c.LLM.BaseURL = v
	}
	if v, ok := lookup(EnvLLMModel); ok && v != "" {
		c.LLM.Model = v
	}
	if v, ok := lookup(EnvTavilyAPIKey); ok && v != "" {
		c.Search.Tavily.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Research.MaxResults <= 0 {
		c.Research.MaxResults = 5
	}
	if c.Research.MaxSnippet <= 0 {
		c.Research.MaxSnippet = 1500
	}
	if c.Research.FetchTimeout <= 0 {
		c.Research.FetchTimeout = 30
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
}

// Validate 检查必填配置
func (c *Config) Validate() error {
	var errs []error
	if c.LLM.APIKey == "" {
		errs = append(errs, fmt.Errorf("llm.api_key is required (or set %s)", EnvLLMAPIKey))
	}
	if c.LLM.Model == "" {
		errs = append(errs, errors.New("llm.model is required"))
	}
	switch c.Search.Provider {
	case "", "tavily", "searxng":
	default:
		errs = append(errs, fmt.Errorf("unknown search provider: %s", c.Search.Provider))
	}
	return errors.Join(errs...)
}
