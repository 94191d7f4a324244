// Package llm 封装外部文本生成能力：Generate(prompt) -> text。
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/config"
	"github.com/iWorld-y/competitor_radar/app/competitor_radar/pkg/logger"
)

// ErrEmptyResponse 模型返回了空内容
var ErrEmptyResponse = errors.New("empty response from model")

// Generator 文本生成能力
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// chatModel eino 聊天模型中本包用到的部分
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// ChatGenerator 基于 eino 聊天模型的 Generator 实现
type ChatGenerator struct {
	cm      chatModel
	system  string
	limiter *rate.Limiter
}

// NewChatGenerator 根据显式配置创建 OpenAI 协议兼容的生成器
func NewChatGenerator(ctx context.Context, llmCfg config.LLMConfig, cc config.ConcurrencyConfig, system string) (*ChatGenerator, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     llmCfg.BaseURL,
		APIKey:      llmCfg.APIKey,
		Model:       llmCfg.Model,
		Temperature: llmCfg.Temperature,
		Timeout:     llmCfg.TimeoutDuration(),
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return newChatGenerator(cm, system, NewLimiter(cc)), nil
}

func newChatGenerator(cm chatModel, system string, limiter *rate.Limiter) *ChatGenerator {
	return &ChatGenerator{cm: cm, system: system, limiter: limiter}
}

// NewLimiter Limit 设置为 RPM/60，Burst 设置为 QPS
func NewLimiter(cc config.ConcurrencyConfig) *rate.Limiter {
	if cc.RPM <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := cc.QPS
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(cc.RPM)/60.0), burst)
}

// Generate 发送一次请求，不做重试
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("limiter wait error: %w", err)
	}

	messages := make([]*schema.Message, 0, 2)
	if g.system != "" {
		messages = append(messages, schema.SystemMessage(g.system))
	}
	messages = append(messages, schema.UserMessage(prompt))

	logger.Log.Debugf("调用模型，提示词长度 %d", len(prompt))
	resp, err := g.cm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Content, nil
}
