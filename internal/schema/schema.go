package schema

import (
	"encoding/json"
	"errors"

	"pokkit-datagen/internal/tools"
)

// ErrArgumentsNotString arguments 字段不是 JSON 字符串
var ErrArgumentsNotString = errors.New("arguments is not a JSON-encoded string")

// Role 对话角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolTypeFunction 是 ToolCall.Type 唯一合法的取值
const ToolTypeFunction = "function"

// FunctionCall 函数调用详情
//
// Arguments 保存 "arguments" 字段的原始 JSON 值。合法数据中它是一个 JSON 字符串，
// 字符串内容本身又是一段 JSON（与 tool-calling chat API 的线上格式一致）。
// 用 RawMessage 而不是 string，是为了让 arguments 写成对象的坏数据也能被解码，再交给校验器拒绝。
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCall 工具调用结构
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // "function"
	Function FunctionCall `json:"function"`
}

// Message 对话消息（一个 turn）
//
// Content 只有在 assistant 发起工具调用时才为 nil，序列化为 null。
type Message struct {
	Role       Role       `json:"role"`
	Content    *string    `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"` // 用于 tool 角色
}

// Text 返回消息正文，nil 时返回空串
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// IsToolCall 判断是否为发起工具调用的 assistant 消息
func (m Message) IsToolCall() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// Example 一条完整的训练样本
type Example struct {
	Messages []Message    `json:"messages"`
	Tools    []tools.Spec `json:"tools"`
}

// ToolCalls 按出现顺序返回样本中的全部工具调用
func (e Example) ToolCalls() []ToolCall {
	var calls []ToolCall
	for _, m := range e.Messages {
		calls = append(calls, m.ToolCalls...)
	}
	return calls
}

// ArgumentsText 解出 arguments 字符串的内容。
// 若 arguments 不是 JSON 字符串，ok 为 false。
func (f FunctionCall) ArgumentsText() (text string, ok bool) {
	if err := json.Unmarshal(f.Arguments, &text); err != nil {
		return "", false
	}
	return text, true
}

// DecodeArguments 把 arguments 解析成 map，供统计和测试使用
func (f FunctionCall) DecodeArguments() (map[string]any, error) {
	text, ok := f.ArgumentsText()
	if !ok {
		return nil, ErrArgumentsNotString
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(text), &args); err != nil {
		return nil, err
	}
	return args, nil
}
