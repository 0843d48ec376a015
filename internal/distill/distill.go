// Package distill 让大模型以 Pokkit 的口吻回答提示库中的问题，生成纯文本样本。
package distill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/sourcegraph/conc/stream"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/catalog"
	"pokkit-datagen/internal/dedup"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/llm"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/validator"
)

const (
	DefaultConcurrency   = 4
	DefaultAttemptFactor = 3
)

// Transcript 记录发给模型的请求和收到的回复
type Transcript interface {
	LogRequest(model, system, user string) error
	LogResponse(content string, err error) error
}

// Options 蒸馏参数
type Options struct {
	Count       int
	Seed        int64
	Concurrency int
	// AttemptFactor 最多发起 Count*AttemptFactor 次请求
	AttemptFactor int
	Model         string
	Persona       catalog.Persona
	Prompts       []string
}

func (o *Options) normalize() {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.AttemptFactor <= 0 {
		o.AttemptFactor = DefaultAttemptFactor
	}
	if o.Persona.System == "" {
		o.Persona = catalog.Pokkit
	}
	if len(o.Prompts) == 0 {
		o.Prompts = Bank()
	}
}

// Stats 蒸馏结果
type Stats struct {
	Written    int
	Attempts   int
	Failed     int
	Rejected   int
	Duplicates int
}

// Shortfall 距离目标还差多少条
func (s Stats) Shortfall(target int) int {
	return max(target-s.Written, 0)
}

// Distiller 蒸馏器
type Distiller struct {
	client     llm.Completer
	v          *validator.Validator
	asm        *assembler.Assembler
	seen       *dedup.Set
	transcript Transcript
}

// New 创建蒸馏器。seen 为 nil 时新建空集合；传入已有集合可以与其他数据去重。
func New(client llm.Completer, v *validator.Validator, asm *assembler.Assembler, seen *dedup.Set) *Distiller {
	if seen == nil {
		seen = dedup.NewSet()
	}
	return &Distiller{client: client, v: v, asm: asm, seen: seen}
}

// WithTranscript 设置请求记录
func (d *Distiller) WithTranscript(t Transcript) *Distiller {
	d.transcript = t
	return d
}

// GenerationPrompt 发给模型的 system prompt：人设加语气规则
func GenerationPrompt(p catalog.Persona) string {
	return p.System + VoiceRules
}

type outcome struct {
	example schema.Example
	err     error
}

// Run 生成样本并按提交顺序写入 w。模型调用失败、校验失败和重复的结果都被跳过并计数；
// 写入错误和 ctx 取消会中止并返回。
func (d *Distiller) Run(ctx context.Context, w *jsonl.Writer, opts Options) (Stats, error) {
	opts.normalize()

	var st Stats
	if opts.Count <= 0 {
		return st, nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	system := GenerationPrompt(opts.Persona)
	budget := opts.Count * opts.AttemptFactor

	var writeErr error
	for st.Written < opts.Count && st.Attempts < budget && writeErr == nil {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		batch := min(opts.Count-st.Written, budget-st.Attempts)
		s := stream.New().WithMaxGoroutines(opts.Concurrency)
		for range batch {
			prompt := opts.Prompts[rng.Intn(len(opts.Prompts))]
			if strings.TrimSpace(prompt) == "" {
				prompt = EmptyPrompt
			}
			st.Attempts++

			s.Go(func() stream.Callback {
				res := d.distillOne(ctx, opts, system, prompt)
				return func() {
					if writeErr != nil || st.Written >= opts.Count {
						return
					}
					writeErr = d.accept(w, res, &st)
				}
			})
		}
		s.Wait()
	}

	if writeErr != nil {
		return st, writeErr
	}
	if err := w.Flush(); err != nil {
		return st, err
	}
	if err := ctx.Err(); err != nil {
		return st, err
	}

	if short := st.Shortfall(opts.Count); short > 0 {
		slog.Warn("distillation fell short", "target", opts.Count, "written", st.Written, "shortfall", short)
	}
	return st, nil
}

func (d *Distiller) distillOne(ctx context.Context, opts Options, system, prompt string) outcome {
	if d.transcript != nil {
		if lerr := d.transcript.LogRequest(opts.Model, system, prompt); lerr != nil {
			slog.Debug("transcript write failed", "error", lerr)
		}
	}
	reply, err := d.client.Complete(ctx, system, prompt)
	if d.transcript != nil {
		if lerr := d.transcript.LogResponse(reply, err); lerr != nil {
			slog.Debug("transcript write failed", "error", lerr)
		}
	}
	if err != nil {
		return outcome{err: err}
	}

	ex := d.asm.Assemble(opts.Persona.System, []schema.Message{
		schema.User(prompt),
		schema.Assistant(reply),
	})
	return outcome{example: ex}
}

// accept 在 stream 的回调中按顺序执行，不需要加锁
func (d *Distiller) accept(w *jsonl.Writer, res outcome, st *Stats) error {
	switch {
	case res.err != nil:
		st.Failed++
		if !errors.Is(res.err, context.Canceled) {
			slog.Warn("completion failed", "error", res.err)
		}
		return nil
	case d.v.Validate(res.example, validator.Strict) != nil:
		st.Rejected++
		return nil
	case !d.seen.AdmitExample(res.example):
		st.Duplicates++
		return nil
	}

	if err := w.Write(res.example); err != nil {
		return fmt.Errorf("write distilled example: %w", err)
	}
	st.Written++
	return nil
}
