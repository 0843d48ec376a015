// Package linker 把 tool 结果消息和它前面的工具调用对应起来。
package linker

import (
	"slices"

	"pokkit-datagen/internal/schema"
)

type pendingCall struct {
	id   string
	name string
}

// Linker 为每个工具调用分配 id，并把 id 和工具名写到紧随其后的 tool 消息上
type Linker struct {
	ids IDSource
}

// New 创建 Linker
func New(ids IDSource) *Linker {
	return &Linker{ids: ids}
}

// Link 单次从左到右扫描，返回新的消息切片，不修改输入。
//
//   - assistant 工具调用：已有 id 则沿用，否则分配新 id，入队 (id, name)
//   - tool 消息：队列非空时出队并写入 tool_call_id / name；队列为空时原样输出，由校验器报 OrphanedToolResult
//   - 其他消息原样输出，不清空待处理队列
//
// 连续多个工具调用按 FIFO 顺序与后续结果配对。
func (l *Linker) Link(turns []schema.Message) []schema.Message {
	out := make([]schema.Message, len(turns))
	var pending []pendingCall

	for i, turn := range turns {
		switch {
		case turn.IsToolCall():
			calls := slices.Clone(turn.ToolCalls)
			for j := range calls {
				if calls[j].ID == "" {
					calls[j].ID = l.ids.NextID()
				}
				pending = append(pending, pendingCall{
					id:   calls[j].ID,
					name: calls[j].Function.Name,
				})
			}
			turn.ToolCalls = calls

		case turn.Role == schema.RoleTool:
			if len(pending) > 0 {
				turn.ToolCallID = pending[0].id
				turn.Name = pending[0].name
				pending = pending[1:]
			}
		}
		out[i] = turn
	}

	return out
}
