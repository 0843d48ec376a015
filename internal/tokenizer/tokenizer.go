// Package tokenizer 估算文本的 token 数量。
package tokenizer

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding 使用的编码名
const Encoding = "cl100k_base"

// Counter 统计 token 数。编码器懒加载，加载失败时回退到按字符长度估算。
type Counter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	load func() (*tiktoken.Tiktoken, error)
}

// New 创建使用 cl100k_base 的计数器
func New() *Counter {
	return &Counter{load: func() (*tiktoken.Tiktoken, error) {
		return tiktoken.GetEncoding(Encoding)
	}}
}

// Fallback 创建只按字符长度估算的计数器，不需要加载编码表
func Fallback() *Counter {
	return &Counter{}
}

func (c *Counter) encoder() *tiktoken.Tiktoken {
	c.once.Do(func() {
		if c.load == nil {
			return
		}
		enc, err := c.load()
		if err != nil {
			slog.Warn("tiktoken unavailable, falling back to length estimate", "error", err)
			return
		}
		c.enc = enc
	})
	return c.enc
}

// Count 返回 text 的 token 数，空串为 0
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	if enc := c.encoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return Estimate(text)
}

// Exact 报告是否在使用真实编码器
func (c *Counter) Exact() bool {
	return c.encoder() != nil
}

// Estimate 按 2.5 字节约等于 1 token 估算
func Estimate(text string) int {
	return int(float64(len(text)) / 2.5)
}
