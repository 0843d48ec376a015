// Package pipeline 驱动确定性的样本生成：采样 → 校验 → 去重 → 写出 JSONL。
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/dedup"
	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/validator"
)

const (
	SplitTrain = "train"
	SplitEval  = "eval"

	DefaultEvalSeedOffset = 1_000_003
	DefaultAttemptFactor  = 5
	DefaultWarnCap        = 10
	DefaultProgressEvery  = 1000
)

// Options 生成参数
type Options struct {
	Count          int
	EvalCount      int
	Seed           int64
	EvalSeedOffset int64
	AttemptFactor  int
	Mode           validator.Mode
	WarnCap        int
	ProgressEvery  int
	System         string
}

func (o *Options) normalize() {
	if o.EvalSeedOffset == 0 {
		o.EvalSeedOffset = DefaultEvalSeedOffset
	}
	if o.AttemptFactor <= 0 {
		o.AttemptFactor = DefaultAttemptFactor
	}
	if o.WarnCap < 0 {
		o.WarnCap = 0
	}
}

// Recorder 接收被拒绝的候选样本，通常是运行日志
type Recorder interface {
	LogRejection(split, generator string, reason error, ex schema.Example) error
}

// ProgressFunc 每写出 ProgressEvery 条样本调用一次
type ProgressFunc func(split string, written, target int)

// Option 引擎选项
type Option func(*Engine)

// WithRecorder 设置拒绝记录器
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithProgress 设置进度回调
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// WithLogger 设置诊断日志
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine 生成引擎。一个 Engine 对应一次运行：指纹集合在 train 和 eval 之间共享。
type Engine struct {
	opts      Options
	sampler   *generator.Sampler
	validator *validator.Validator
	asm       *assembler.Assembler
	seen      *dedup.Set

	recorder Recorder
	progress ProgressFunc
	log      *slog.Logger

	report Report
}

// New 创建引擎
func New(reg *generator.Registry, v *validator.Validator, asm *assembler.Assembler, opts Options, options ...Option) *Engine {
	opts.normalize()
	e := &Engine{
		opts:      opts,
		sampler:   generator.NewSampler(reg),
		validator: v,
		asm:       asm,
		seen:      dedup.NewSet(),
		log:       slog.Default(),
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Run 先生成 train 再生成 eval（eval 为 nil 或 EvalCount 为 0 时跳过）。
// 尝试次数用尽时返回较小的文件并在报告里记录缺口，不返回错误；
// 只有写出失败或 ctx 取消才返回错误。
func (e *Engine) Run(ctx context.Context, train, eval io.Writer) (Report, error) {
	if err := e.runSplit(ctx, SplitTrain, e.opts.Seed, e.opts.Count, train); err != nil {
		return e.report, err
	}

	if eval != nil && e.opts.EvalCount > 0 {
		seed := e.opts.Seed + e.opts.EvalSeedOffset
		if err := e.runSplit(ctx, SplitEval, seed, e.opts.EvalCount, eval); err != nil {
			return e.report, err
		}
	}

	return e.report, nil
}

func (e *Engine) runSplit(ctx context.Context, split string, seed int64, target int, w io.Writer) error {
	kit := generator.NewKit(seed, e.asm, e.opts.System)
	out := jsonl.NewWriter(w)
	budget := target * e.opts.AttemptFactor

	rep := SplitReport{
		Split:    split,
		Seed:     seed,
		Target:   target,
		Rejected: make(map[validator.Kind]int),
	}
	defer func() { e.report.Splits = append(e.report.Splits, rep) }()

	for rep.Written < target && rep.Attempts < budget {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep.Attempts++

		name, ex := e.sampler.Sample(kit)

		if err := e.validator.Validate(ex, e.opts.Mode); err != nil {
			rep.Rejected[validator.KindOf(err)]++
			e.reject(split, name, err, ex)
			continue
		}

		if !e.seen.AdmitExample(ex) {
			rep.Duplicates++
			continue
		}

		if err := out.Write(ex); err != nil {
			return fmt.Errorf("write %s example: %w", split, err)
		}
		rep.Written++

		if e.progress != nil && e.opts.ProgressEvery > 0 && rep.Written%e.opts.ProgressEvery == 0 {
			e.progress(split, rep.Written, target)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", split, err)
	}

	if rep.Written < target {
		e.log.Warn("attempt budget exhausted",
			"split", split,
			"target", target,
			"written", rep.Written,
			"attempts", rep.Attempts,
			"shortfall", target-rep.Written,
		)
	}
	return nil
}

// reject 前 WarnCap 条拒绝完整打印，其余只计数；运行日志总是记录全部
func (e *Engine) reject(split, name string, err error, ex schema.Example) {
	if len(e.report.Warnings) < e.opts.WarnCap {
		attrs := []any{"split", split, "generator", name}
		var ve *validator.Error
		if errors.As(err, &ve) {
			attrs = append(attrs, "kind", ve.Kind, "reason", ve.Reason, "turn", ve.Turn)
		}
		e.log.Warn("rejected candidate", append(attrs, "error", err)...)
		e.report.Warnings = append(e.report.Warnings, fmt.Sprintf("[%s] %s: %v", split, name, err))
	} else {
		e.report.Suppressed++
	}

	if e.recorder != nil {
		if rerr := e.recorder.LogRejection(split, name, err, ex); rerr != nil {
			e.log.Debug("run log write failed", "error", rerr)
		}
	}
}
