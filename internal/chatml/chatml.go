// Package chatml 把样本渲染成 ChatML 文本，用于预览和 token 统计。
//
// 工具调用渲染为 <tool_call>{"name": ..., "arguments": {...}}</tool_call>，
// 与常见的 tool-calling 聊天模板一致。
package chatml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"pokkit-datagen/internal/schema"
)

// DefaultTemplate ChatML 模板
const DefaultTemplate = `{% for m in messages %}<|im_start|>{{ m.role }}
{% if m.content %}{{ m.content|safe }}{% endif %}{% for c in m.calls %}<tool_call>
{{ c|safe }}
</tool_call>{% endfor %}<|im_end|>
{% endfor %}{% if add_generation_prompt %}<|im_start|>assistant
{% endif %}`

// Renderer 编译好的模板
type Renderer struct {
	tpl *pongo2.Template
}

// New 使用默认 ChatML 模板
func New() (*Renderer, error) {
	return FromString(DefaultTemplate)
}

// FromString 从 Jinja 风格的模板源码创建渲染器。
// 模板可以使用 messages（role / content / calls）和 add_generation_prompt。
func FromString(src string) (*Renderer, error) {
	tpl, err := pongo2.FromString(src)
	if err != nil {
		return nil, fmt.Errorf("parse chat template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render 渲染整条样本
func (r *Renderer) Render(ex schema.Example) (string, error) {
	return r.RenderMessages(ex.Messages, false)
}

// RenderMessages 渲染消息列表，addGenerationPrompt 为 true 时在末尾追加 assistant 起始标记
func (r *Renderer) RenderMessages(msgs []schema.Message, addGenerationPrompt bool) (string, error) {
	ctx := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		calls := make([]string, 0, len(m.ToolCalls))
		for _, tc := range m.ToolCalls {
			calls = append(calls, callJSON(tc))
		}
		ctx = append(ctx, map[string]any{
			"role":    string(m.Role),
			"content": m.Text(),
			"calls":   calls,
		})
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"messages":              ctx,
		"add_generation_prompt": addGenerationPrompt,
	})
	if err != nil {
		return "", fmt.Errorf("render chat template: %w", err)
	}
	return out, nil
}

// callJSON 把 arguments 展开成对象；arguments 不是合法的 JSON 字符串时保留原始值
func callJSON(tc schema.ToolCall) string {
	args := tc.Function.Arguments
	if text, ok := tc.Function.ArgumentsText(); ok && json.Valid([]byte(text)) {
		args = json.RawMessage(text)
	}
	if len(args) == 0 || !json.Valid(args) {
		args = json.RawMessage("null")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}{tc.Function.Name, args})
	return strings.TrimRight(buf.String(), "\n")
}
