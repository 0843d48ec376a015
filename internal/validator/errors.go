package validator

import (
	"fmt"
	"strings"
)

// Kind 校验失败类别
type Kind string

const (
	EmptyConversation  Kind = "EmptyConversation"
	MissingSystemTurn  Kind = "MissingSystemTurn"
	MalformedToolCall  Kind = "MalformedToolCall"
	UnknownTool        Kind = "UnknownTool"
	OrphanedToolResult Kind = "OrphanedToolResult"
)

// Kinds 按检查顺序列出全部类别，用于报表
var Kinds = []Kind{
	EmptyConversation,
	MissingSystemTurn,
	MalformedToolCall,
	UnknownTool,
	OrphanedToolResult,
}

// Reason 细分原因
type Reason string

const (
	ReasonMissingID            Reason = "missing_id"
	ReasonWrongType            Reason = "wrong_type"
	ReasonMissingName          Reason = "missing_name"
	ReasonNotAssistant         Reason = "not_assistant"
	ReasonMultipleCalls        Reason = "multiple_calls"
	ReasonArgumentsNotString   Reason = "arguments_not_string"
	ReasonArgumentsUnparseable Reason = "arguments_unparseable"
	ReasonArgumentsSchema      Reason = "arguments_schema"
	ReasonUnanswered           Reason = "unanswered"
	ReasonMissingCallID        Reason = "missing_tool_call_id"
	ReasonUnknownCallID        Reason = "unknown_tool_call_id"
	ReasonNotPending           Reason = "not_pending"
	ReasonNameMismatch         Reason = "name_mismatch"
)

// Error 校验错误，Turn 为出错消息在 messages 中的下标（无则为 -1）
type Error struct {
	Kind   Kind
	Reason Reason
	Turn   int
	Tool   string
	Detail string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	if e.Reason != "" {
		fmt.Fprintf(&sb, " (%s)", e.Reason)
	}
	if e.Turn >= 0 {
		fmt.Fprintf(&sb, " at turn %d", e.Turn)
	}
	if e.Tool != "" {
		fmt.Fprintf(&sb, " [%s]", e.Tool)
	}
	if e.Detail != "" {
		sb.WriteString(": " + e.Detail)
	}
	return sb.String()
}

// Is 让 errors.Is 按 Kind（以及非空的 Reason）匹配哨兵错误
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// 哨兵错误
var (
	ErrEmptyConversation  = &Error{Kind: EmptyConversation, Turn: -1}
	ErrMissingSystemTurn  = &Error{Kind: MissingSystemTurn, Turn: -1}
	ErrMalformedToolCall  = &Error{Kind: MalformedToolCall, Turn: -1}
	ErrUnknownTool        = &Error{Kind: UnknownTool, Turn: -1}
	ErrOrphanedToolResult = &Error{Kind: OrphanedToolResult, Turn: -1}
)

// KindOf 提取错误类别，非校验错误返回空串
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}
