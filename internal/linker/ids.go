package linker

import (
	"io"
	"strings"

	"github.com/google/uuid"
)

// IDSource 生成工具调用 id
type IDSource interface {
	NextID() string
}

// UUIDSource 基于 UUIDv4 的 id 生成器。
// 随机字节来自传入的 reader：传入带种子的随机源即可让 id 序列可复现。
// 已发出的 id 会被记录，碰撞时重新生成，保证同一个 source 内 id 唯一。
type UUIDSource struct {
	rand   io.Reader
	issued map[string]struct{}
}

// NewUUIDSource 创建 id 生成器，rand 为 nil 时使用 crypto/rand
func NewUUIDSource(rand io.Reader) *UUIDSource {
	return &UUIDSource{
		rand:   rand,
		issued: make(map[string]struct{}),
	}
}

// NextID 返回形如 call_0123456789abcdef01234567 的新 id
func (s *UUIDSource) NextID() string {
	for {
		var (
			u   uuid.UUID
			err error
		)
		if s.rand == nil {
			u, err = uuid.NewRandom()
		} else {
			u, err = uuid.NewRandomFromReader(s.rand)
		}
		if err != nil {
			// reader 出错时退回系统随机源
			u = uuid.New()
		}

		id := "call_" + strings.ReplaceAll(u.String(), "-", "")[:24]
		if _, dup := s.issued[id]; dup {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

// Issued 返回已发出的 id 数量
func (s *UUIDSource) Issued() int {
	return len(s.issued)
}
