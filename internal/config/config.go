// Package config 加载 YAML 配置，并转换成各组件的参数。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"pokkit-datagen/internal/audit"
	"pokkit-datagen/internal/pipeline"
	"pokkit-datagen/internal/retry"
	"pokkit-datagen/internal/validator"
)

// APIKeyEnv api_key 为空时读取的环境变量
const APIKeyEnv = "OPENAI_API_KEY"

// GenerationConfig 数据集生成配置
type GenerationConfig struct {
	Count          int   `yaml:"count"`
	Seed           int64 `yaml:"seed"`
	EvalCount      int   `yaml:"eval_count"`
	EvalSeedOffset int64 `yaml:"eval_seed_offset"`
	AttemptFactor  int   `yaml:"attempt_factor"`
	Strict         bool  `yaml:"strict"`
	WarnCap        int   `yaml:"warn_cap"`
	ProgressEvery  int   `yaml:"progress_every"`
}

// RetryConfig 重试配置，时间单位为秒
type RetryConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MaxRetries      int     `yaml:"max_retries"`
	InitialDelay    float64 `yaml:"initial_delay"`
	MaxDelay        float64 `yaml:"max_delay"`
	ExponentialBase float64 `yaml:"exponential_base"`
}

// Retry 转换成 retry.Config
func (r RetryConfig) Retry() *retry.Config {
	return retry.FromSeconds(r.Enabled, r.MaxRetries, r.InitialDelay, r.MaxDelay, r.ExponentialBase)
}

// LLMConfig 蒸馏用的 LLM 配置
type LLMConfig struct {
	APIKey      string      `yaml:"api_key"`
	APIBase     string      `yaml:"api_base"`
	Model       string      `yaml:"model"`
	Temperature float64     `yaml:"temperature"`
	MaxTokens   int         `yaml:"max_tokens"`
	Concurrency int         `yaml:"concurrency"`
	Retry       RetryConfig `yaml:"retry"`
}

// AuditConfig 审计规则
type AuditConfig struct {
	MaxWords      int      `yaml:"max_words"`
	BannedPhrases []string `yaml:"banned_phrases"`
}

// Rules 转换成 audit.Rules
func (a AuditConfig) Rules() audit.Rules {
	return audit.Rules{MaxWords: a.MaxWords, BannedPhrases: a.BannedPhrases}
}

// LogConfig 日志配置。Dir 为空时使用 ~/.pokkit-datagen/log
type LogConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Config 主配置
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	LLM        LLMConfig        `yaml:"llm"`
	Audit      AuditConfig      `yaml:"audit"`
	Log        LogConfig        `yaml:"log"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Count:          5000,
			Seed:           42,
			EvalCount:      0,
			EvalSeedOffset: pipeline.DefaultEvalSeedOffset,
			AttemptFactor:  pipeline.DefaultAttemptFactor,
			Strict:         true,
			WarnCap:        pipeline.DefaultWarnCap,
			ProgressEvery:  pipeline.DefaultProgressEvery,
		},
		LLM: LLMConfig{
			APIBase:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			Temperature: 0.9,
			MaxTokens:   300,
			Concurrency: 4,
			Retry: RetryConfig{
				Enabled:         true,
				MaxRetries:      3,
				InitialDelay:    1.0,
				MaxDelay:        60.0,
				ExponentialBase: 2.0,
			},
		},
		Audit: AuditConfig{
			MaxWords:      audit.DefaultMaxWords,
			BannedPhrases: slices.Clone(audit.DefaultBannedPhrases),
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadFromFile 从 YAML 文件加载配置，未出现的字段保留默认值
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load path 为空或文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	g := c.Generation
	switch {
	case g.Count < 0:
		return errors.New("generation.count must be >= 0")
	case g.EvalCount < 0:
		return errors.New("generation.eval_count must be >= 0")
	case g.AttemptFactor < 1:
		return errors.New("generation.attempt_factor must be >= 1")
	case g.WarnCap < 0:
		return errors.New("generation.warn_cap must be >= 0")
	case c.LLM.Concurrency < 1:
		return errors.New("llm.concurrency must be >= 1")
	case c.Audit.MaxWords < 1:
		return errors.New("audit.max_words must be >= 1")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// APIKey 配置中的 api_key，为空时读取 OPENAI_API_KEY
func (c *Config) APIKey() string {
	if c.LLM.APIKey != "" {
		return c.LLM.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// Options 生成阶段的流水线参数
func (c *Config) Options() pipeline.Options {
	g := c.Generation
	return pipeline.Options{
		Count:          g.Count,
		EvalCount:      g.EvalCount,
		Seed:           g.Seed,
		EvalSeedOffset: g.EvalSeedOffset,
		AttemptFactor:  g.AttemptFactor,
		Mode:           validator.ModeFromBool(g.Strict),
		WarnCap:        g.WarnCap,
		ProgressEvery:  g.ProgressEvery,
	}
}

// ParseLevel 解析 debug / info / warn / error，空串视为 info
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
