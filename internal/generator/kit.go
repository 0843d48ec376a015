package generator

import (
	"math/rand"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/linker"
	"pokkit-datagen/internal/schema"
)

// Kit 是生成器拿到的全部上下文：带种子的随机源、linker 和 assembler。
// 一次生成过程（train 或 eval）只用一个 Kit，所有随机选择都从同一个随机流中取，
// 因此同一个种子总能得到同样的输出。Kit 不是并发安全的。
type Kit struct {
	rng    *rand.Rand
	linker *linker.Linker
	asm    *assembler.Assembler
	system string
}

// NewKit 创建 Kit，system 为默认 persona 的 system prompt
func NewKit(seed int64, asm *assembler.Assembler, system string) *Kit {
	rng := rand.New(rand.NewSource(seed))
	return &Kit{
		rng:    rng,
		linker: linker.New(linker.NewUUIDSource(rng)),
		asm:    asm,
		system: system,
	}
}

// Rand 返回底层随机源
func (k *Kit) Rand() *rand.Rand {
	return k.rng
}

// Intn 返回 [0, n) 的随机整数
func (k *Kit) Intn(n int) int {
	return k.rng.Intn(n)
}

// Between 返回 [lo, hi] 的随机整数
func (k *Kit) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + k.rng.Intn(hi-lo+1)
}

// Chance 以概率 p 返回 true
func (k *Kit) Chance(p float64) bool {
	return k.rng.Float64() < p
}

// System 返回默认 system prompt
func (k *Kit) System() string {
	return k.system
}

// Example 链接消息并用默认 persona 组装成样本
func (k *Kit) Example(turns ...schema.Message) schema.Example {
	return k.ExampleAs(k.system, turns...)
}

// ExampleAs 用指定的 system prompt 组装样本
func (k *Kit) ExampleAs(system string, turns ...schema.Message) schema.Example {
	return k.asm.Assemble(system, k.linker.Link(turns))
}

// Pick 从 items 中随机取一个，items 为空时返回零值
func Pick[T any](k *Kit, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[k.rng.Intn(len(items))]
}

// Shuffled 返回打乱顺序后的副本
func Shuffled[T any](k *Kit, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	k.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
