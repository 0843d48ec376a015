// Package dedup 基于可见文本指纹的样本去重。
package dedup

import (
	"github.com/cespare/xxhash/v2"

	"pokkit-datagen/internal/schema"
)

// separator ASCII 记录分隔符，避免 "ab"+"c" 与 "a"+"bc" 得到相同指纹
const separator = "\x1e"

// Fingerprint 只对 user 和 assistant 消息的 content 取 xxhash64。
// 工具调用参数、工具结果和 system 消息都不参与，
// 所以可见文本相同、负载不同的两条样本被视为重复。
func Fingerprint(ex schema.Example) uint64 {
	d := xxhash.New()
	first := true
	for _, m := range ex.Messages {
		if m.Role != schema.RoleUser && m.Role != schema.RoleAssistant {
			continue
		}
		if !first {
			_, _ = d.WriteString(separator)
		}
		first = false
		_, _ = d.WriteString(m.Text())
	}
	return d.Sum64()
}

// Set 一次运行内的指纹集合，train 和 eval 共用以保证两者不相交。不是并发安全的。
type Set struct {
	seen map[uint64]struct{}
}

// NewSet 创建空集合
func NewSet() *Set {
	return &Set{seen: make(map[uint64]struct{})}
}

// Admit 指纹未出现过时记录并返回 true，重复时返回 false
func (s *Set) Admit(fp uint64) bool {
	if _, dup := s.seen[fp]; dup {
		return false
	}
	s.seen[fp] = struct{}{}
	return true
}

// AdmitExample 计算样本指纹并尝试加入集合
func (s *Set) AdmitExample(ex schema.Example) bool {
	return s.Admit(Fingerprint(ex))
}

// Seen 判断指纹是否已存在
func (s *Set) Seen(fp uint64) bool {
	_, ok := s.seen[fp]
	return ok
}

// Len 已记录的指纹数
func (s *Set) Len() int {
	return len(s.seen)
}
