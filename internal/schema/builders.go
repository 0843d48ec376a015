package schema

import (
	"encoding/json"
	"fmt"
)

// System 构造 system 消息
func System(text string) Message {
	return Message{Role: RoleSystem, Content: &text}
}

// User 构造 user 消息
func User(text string) Message {
	return Message{Role: RoleUser, Content: &text}
}

// Assistant 构造纯文本的 assistant 消息
func Assistant(text string) Message {
	return Message{Role: RoleAssistant, Content: &text}
}

// Call 构造发起单个工具调用的 assistant 消息。
// id 留空，由 linker 填写；args 会被编码成 JSON 字符串。
func Call(name string, args map[string]any) Message {
	return Message{
		Role: RoleAssistant,
		ToolCalls: []ToolCall{{
			Type: ToolTypeFunction,
			Function: FunctionCall{
				Name:      name,
				Arguments: EncodeArguments(args),
			},
		}},
	}
}

// Result 构造工具返回消息，tool_call_id / name 由 linker 填写
func Result(payload any) Message {
	b, err := json.Marshal(payload)
	if err != nil {
		b = fmt.Appendf(nil, `{"error": "json marshal failed: %v"}`, err)
	}
	text := string(b)
	return Message{Role: RoleTool, Content: &text}
}

// EncodeArguments 把参数编码成 "JSON 字符串里的 JSON"
func EncodeArguments(args map[string]any) json.RawMessage {
	if args == nil {
		args = map[string]any{}
	}
	inner, err := json.Marshal(args)
	if err != nil {
		inner = []byte("{}")
	}
	outer, _ := json.Marshal(string(inner))
	return outer
}
