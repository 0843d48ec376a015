package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Config 重试配置
type Config struct {
	Enabled         bool
	MaxRetries      int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	ExponentialBase float64

	// Retryable 判断错误是否值得重试，nil 表示全部重试
	Retryable func(error) bool
}

// DefaultConfig 默认重试配置
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		MaxRetries:      3,
		InitialDelay:    time.Second,
		MaxDelay:        60 * time.Second,
		ExponentialBase: 2.0,
	}
}

// FromSeconds 由配置文件中以秒为单位的数值构造 Config
func FromSeconds(enabled bool, maxRetries int, initialDelay, maxDelay, base float64) *Config {
	return &Config{
		Enabled:         enabled,
		MaxRetries:      maxRetries,
		InitialDelay:    time.Duration(initialDelay * float64(time.Second)),
		MaxDelay:        time.Duration(maxDelay * float64(time.Second)),
		ExponentialBase: base,
	}
}

// ExhaustedError 重试耗尽错误
type ExhaustedError struct {
	LastError error
	Attempts  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry failed after %d attempts: %v", e.Attempts, e.LastError)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastError
}

// OnRetryFunc 重试回调函数类型
type OnRetryFunc func(err error, attempt int)

// CalculateDelay 计算第 attempt 次重试前的等待时间（指数退避，上限 MaxDelay）
func (c *Config) CalculateDelay(attempt int) time.Duration {
	delay := float64(c.InitialDelay) * math.Pow(c.ExponentialBase, float64(attempt))
	if c.MaxDelay > 0 && delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Config) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return c.Retryable == nil || c.Retryable(err)
}

// Do 执行带重试的函数。不可重试的错误直接返回，不包装。
func Do[T any](ctx context.Context, cfg *Config, fn func() (T, error), onRetry OnRetryFunc) (T, error) {
	var zero T

	if cfg == nil {
		cfg = DefaultConfig()
	}

	if !cfg.Enabled {
		return fn()
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !cfg.retryable(err) {
			return zero, err
		}

		lastErr = err
		if attempt >= cfg.MaxRetries {
			break
		}

		if onRetry != nil {
			onRetry(err, attempt+1)
		}

		timer := time.NewTimer(cfg.CalculateDelay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, &ExhaustedError{LastError: lastErr, Attempts: cfg.MaxRetries + 1}
}
