package assembler

import (
	"slices"

	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

// Assembler 把已链接的消息序列包装成完整样本：
// 前置 system 消息（persona），附上本次运行固定的工具 manifest。
type Assembler struct {
	manifest []tools.Spec
}

// New 创建 Assembler，manifest 在运行期间保持不变
func New(manifest []tools.Spec) *Assembler {
	return &Assembler{manifest: slices.Clone(manifest)}
}

// Assemble 组装一条样本，不做任何校验
func (a *Assembler) Assemble(system string, turns []schema.Message) schema.Example {
	msgs := make([]schema.Message, 0, len(turns)+1)
	msgs = append(msgs, schema.System(system))
	msgs = append(msgs, turns...)

	return schema.Example{
		Messages: msgs,
		Tools:    slices.Clone(a.manifest),
	}
}

// Manifest 返回工具 manifest 的副本
func (a *Assembler) Manifest() []tools.Spec {
	return slices.Clone(a.manifest)
}
