// Package validator 检查一条样本在结构上是否合法。
//
// 检查按固定顺序进行，遇到第一个问题即返回：
//
//  1. 空对话
//  2. 首条消息必须是 system
//  3. 工具调用结构：只能出现在 assistant 消息上，每条恰好一个，id / type / name / arguments 齐全
//  4. strict 模式下工具名必须在 allow-list 中（可选再做参数 schema 校验）
//  5. tool 消息按 FIFO 对应最早未解决的调用，tool_call_id 和 name 都必须一致
//  6. 每个工具调用都必须有对应的 tool 结果
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

// Mode 校验模式
type Mode int

const (
	// Permissive 只做结构检查，允许未登记的工具名
	Permissive Mode = iota
	// Strict 额外要求工具名在 allow-list 中
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "permissive"
}

// ModeFromBool 由配置中的 strict 开关得到模式
func ModeFromBool(strict bool) Mode {
	if strict {
		return Strict
	}
	return Permissive
}

// Validator 样本校验器，创建后只读，可并发使用
type Validator struct {
	allowed map[string]struct{}
	schemas map[string]*gojsonschema.Schema
}

// Option 校验器选项
type Option func(*Validator) error

// WithSchemas 在 strict 模式下按参数 JSON schema 校验 arguments
func WithSchemas(params map[string]map[string]any) Option {
	return func(v *Validator) error {
		for name, p := range params {
			s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(p))
			if err != nil {
				return fmt.Errorf("compile schema for %s: %w", name, err)
			}
			v.schemas[name] = s
		}
		return nil
	}
}

// New 创建校验器，allowed 为 strict 模式的工具名 allow-list
func New(allowed []string, opts ...Option) (*Validator, error) {
	v := &Validator{
		allowed: make(map[string]struct{}, len(allowed)),
		schemas: make(map[string]*gojsonschema.Schema),
	}
	for _, name := range allowed {
		v.allowed[name] = struct{}{}
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ForRegistry 用工具注册表的名字和参数 schema 创建校验器
func ForRegistry(reg *tools.ToolRegistry) (*Validator, error) {
	return New(reg.Names(), WithSchemas(reg.Parameters()))
}

// Allowed 判断工具名是否在 allow-list 中
func (v *Validator) Allowed(name string) bool {
	_, ok := v.allowed[name]
	return ok
}

// Validate 校验样本，合法返回 nil，否则返回 *Error。
// 不修改样本，对同一输入多次调用结果相同。
func (v *Validator) Validate(ex schema.Example, mode Mode) error {
	msgs := ex.Messages

	if len(msgs) == 0 {
		return &Error{Kind: EmptyConversation, Turn: -1}
	}
	if msgs[0].Role != schema.RoleSystem {
		return &Error{
			Kind:   MissingSystemTurn,
			Turn:   0,
			Detail: fmt.Sprintf("first role is %q", msgs[0].Role),
		}
	}

	if err := checkCallShapes(msgs); err != nil {
		return err
	}

	if mode == Strict {
		if err := v.checkAllowed(msgs); err != nil {
			return err
		}
	}

	if err := checkResults(msgs); err != nil {
		return err
	}

	return checkAnswered(msgs)
}

func checkCallShapes(msgs []schema.Message) error {
	for i, m := range msgs {
		if len(m.ToolCalls) == 0 {
			continue
		}
		if m.Role != schema.RoleAssistant {
			return &Error{
				Kind:   MalformedToolCall,
				Reason: ReasonNotAssistant,
				Turn:   i,
				Tool:   m.ToolCalls[0].Function.Name,
				Detail: fmt.Sprintf("tool_calls on %q turn", m.Role),
			}
		}
		if len(m.ToolCalls) != 1 {
			return &Error{
				Kind:   MalformedToolCall,
				Reason: ReasonMultipleCalls,
				Turn:   i,
				Detail: fmt.Sprintf("%d calls in one turn", len(m.ToolCalls)),
			}
		}
		for _, tc := range m.ToolCalls {
			name := tc.Function.Name
			malformed := func(r Reason, detail string) error {
				return &Error{Kind: MalformedToolCall, Reason: r, Turn: i, Tool: name, Detail: detail}
			}

			if tc.ID == "" {
				return malformed(ReasonMissingID, "")
			}
			if tc.Type != schema.ToolTypeFunction {
				return malformed(ReasonWrongType, fmt.Sprintf("type %q", tc.Type))
			}
			if name == "" {
				return malformed(ReasonMissingName, "")
			}

			raw := bytes.TrimSpace(tc.Function.Arguments)
			if len(raw) == 0 || raw[0] != '"' {
				return malformed(ReasonArgumentsNotString, "arguments must be a JSON-encoded string")
			}
			text, ok := tc.Function.ArgumentsText()
			if !ok {
				return malformed(ReasonArgumentsNotString, "arguments string is not valid JSON")
			}
			if !json.Valid([]byte(text)) {
				return malformed(ReasonArgumentsUnparseable, truncate(text, 60))
			}
		}
	}
	return nil
}

func (v *Validator) checkAllowed(msgs []schema.Message) error {
	for i, m := range msgs {
		for _, tc := range m.ToolCalls {
			name := tc.Function.Name
			if !v.Allowed(name) {
				return &Error{Kind: UnknownTool, Turn: i, Tool: name}
			}
		}
	}

	if len(v.schemas) == 0 {
		return nil
	}
	for i, m := range msgs {
		for _, tc := range m.ToolCalls {
			s, ok := v.schemas[tc.Function.Name]
			if !ok {
				continue
			}
			text, _ := tc.Function.ArgumentsText()
			result, err := s.Validate(gojsonschema.NewStringLoader(text))
			if err != nil {
				return &Error{Kind: MalformedToolCall, Reason: ReasonArgumentsSchema, Turn: i, Tool: tc.Function.Name, Detail: err.Error()}
			}
			if !result.Valid() {
				var problems []string
				for _, re := range result.Errors() {
					problems = append(problems, re.String())
				}
				return &Error{
					Kind:   MalformedToolCall,
					Reason: ReasonArgumentsSchema,
					Turn:   i,
					Tool:   tc.Function.Name,
					Detail: strings.Join(problems, "; "),
				}
			}
		}
	}
	return nil
}

func checkResults(msgs []schema.Message) error {
	type call struct{ id, name string }
	var pending []call
	seen := make(map[string]bool)

	for i, m := range msgs {
		for _, tc := range m.ToolCalls {
			pending = append(pending, call{id: tc.ID, name: tc.Function.Name})
			seen[tc.ID] = true
		}
		if m.Role != schema.RoleTool {
			continue
		}
		if m.ToolCallID == "" {
			return &Error{Kind: OrphanedToolResult, Reason: ReasonMissingCallID, Turn: i}
		}
		orphan := func(r Reason, detail string) error {
			return &Error{Kind: OrphanedToolResult, Reason: r, Turn: i, Tool: m.Name, Detail: detail}
		}
		if !seen[m.ToolCallID] {
			return orphan(ReasonUnknownCallID, m.ToolCallID)
		}
		// 已解决或排在后面的调用都不能被这条结果认领
		if len(pending) == 0 || pending[0].id != m.ToolCallID {
			return orphan(ReasonNotPending, m.ToolCallID)
		}
		if m.Name != pending[0].name {
			return orphan(ReasonNameMismatch, fmt.Sprintf("%q answers %q", m.Name, pending[0].name))
		}
		pending = pending[1:]
	}
	return nil
}

func checkAnswered(msgs []schema.Message) error {
	answered := make(map[string]bool)
	for _, m := range msgs {
		if m.Role == schema.RoleTool {
			answered[m.ToolCallID] = true
		}
	}
	for i, m := range msgs {
		for _, tc := range m.ToolCalls {
			if !answered[tc.ID] {
				return &Error{
					Kind:   MalformedToolCall,
					Reason: ReasonUnanswered,
					Turn:   i,
					Tool:   tc.Function.Name,
					Detail: tc.ID,
				}
			}
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
