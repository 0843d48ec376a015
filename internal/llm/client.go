package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"pokkit-datagen/internal/retry"
)

// ErrEmptyCompletion 模型没有返回任何内容
var ErrEmptyCompletion = errors.New("empty completion")

// Completer (system, user) -> text 的最小契约，distill 只依赖这个接口
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client 基于 OpenAI 兼容接口的 LLM 客户端
type Client struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	retryConfig *retry.Config
	onRetry     retry.OnRetryFunc
}

// ClientOption 客户端选项
type ClientOption func(*Client)

// WithRetryConfig 设置重试配置
func WithRetryConfig(cfg *retry.Config) ClientOption {
	return func(c *Client) {
		c.retryConfig = cfg
	}
}

// WithRetryCallback 设置重试回调
func WithRetryCallback(fn retry.OnRetryFunc) ClientOption {
	return func(c *Client) {
		c.onRetry = fn
	}
}

// WithSampling 设置采样温度和最大输出 token 数，0 表示使用服务端默认值
func WithSampling(temperature float64, maxTokens int) ClientOption {
	return func(c *Client) {
		c.temperature = temperature
		c.maxTokens = int64(maxTokens)
	}
}

// NewClient 创建 LLM 客户端
func NewClient(apiKey, baseURL, model string, opts ...ClientOption) *Client {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// 重试统一交给 internal/retry
		option.WithMaxRetries(0),
	}

	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}

	c := &Client{
		client:      openai.NewClient(clientOpts...),
		model:       model,
		retryConfig: retry.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.retryConfig != nil && c.retryConfig.Retryable == nil {
		c.retryConfig.Retryable = Retryable
	}

	slog.Info("Initialized LLM client",
		slog.String("model", model),
		slog.String("baseURL", baseURL),
	)

	return c
}

// Model 返回模型名
func (c *Client) Model() string {
	return c.model
}

// Complete 发送 system + user 两条消息，返回助手回复的文本
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return retry.Do(ctx, c.retryConfig, func() (string, error) {
		return c.doComplete(ctx, system, user)
	}, c.onRetry)
}

func (c *Client) doComplete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Retryable 限流、服务端错误和网络错误值得重试；其余 4xx 直接失败
func Retryable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	return !errors.Is(err, ErrEmptyCompletion)
}
