// Package inspect 统计 JSONL 数据集：样本数、平均消息数和 token 数、工具调用分布。
package inspect

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/tidwall/gjson"

	"pokkit-datagen/internal/chatml"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/tokenizer"
)

// ToolCount 某个工具被调用的次数
type ToolCount struct {
	Name  string
	Count int
}

// Sample 被选中展示的样本
type Sample struct {
	Index     int
	Rendering string
}

// Stats 统计结果
type Stats struct {
	Examples  int
	Messages  int
	Tokens    int
	Malformed int
	ToolCalls map[string]int
	// MultiStep 第一个消息数超过 8 的样本下标，没有时为 -1
	MultiStep int
	Samples   []Sample
}

// AvgMessages 每条样本的平均消息数
func (s *Stats) AvgMessages() float64 {
	if s.Examples == 0 {
		return 0
	}
	return float64(s.Messages) / float64(s.Examples)
}

// AvgTokens 每条样本的平均 token 数
func (s *Stats) AvgTokens() float64 {
	if s.Examples == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.Examples)
}

// Distribution 按调用次数降序排列，次数相同按名字排序
func (s *Stats) Distribution() []ToolCount {
	out := make([]ToolCount, 0, len(s.ToolCalls))
	for name, n := range s.ToolCalls {
		out = append(out, ToolCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b ToolCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Inspector 数据集统计器
type Inspector struct {
	counter  *tokenizer.Counter
	renderer *chatml.Renderer
	samples  []int
}

// New 创建统计器。samples 是需要渲染展示的样本下标（从 0 开始）。
func New(counter *tokenizer.Counter, renderer *chatml.Renderer, samples ...int) *Inspector {
	return &Inspector{counter: counter, renderer: renderer, samples: samples}
}

// Run 读取整个数据集。无法解码的行计入 Malformed 并跳过。
func (in *Inspector) Run(r io.Reader) (*Stats, error) {
	st := &Stats{ToolCalls: make(map[string]int), MultiStep: -1}

	err := jsonl.Scan(r, func(rec jsonl.Record) error {
		if rec.Err != nil {
			st.Malformed++
			slog.Warn("skipping malformed line", "line", rec.Line, "error", rec.Err)
			return nil
		}
		idx := st.Examples
		st.Examples++

		msgs := gjson.GetBytes(rec.Raw, "messages.#").Int()
		st.Messages += int(msgs)
		if msgs > 8 && st.MultiStep < 0 {
			st.MultiStep = idx
		}

		gjson.GetBytes(rec.Raw, "messages.#.tool_calls.#.function.name").ForEach(func(_, names gjson.Result) bool {
			names.ForEach(func(_, name gjson.Result) bool {
				st.ToolCalls[name.String()]++
				return true
			})
			return true
		})

		text, err := in.renderer.Render(rec.Example)
		if err != nil {
			return fmt.Errorf("line %d: %w", rec.Line, err)
		}
		st.Tokens += in.counter.Count(text)

		// 指定下标之外，第一个多步样本也展示
		if slices.Contains(in.samples, idx) || idx == st.MultiStep {
			st.Samples = append(st.Samples, Sample{Index: idx, Rendering: text})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}
