// Package generator 定义带权重的样本生成器注册表和采样器。
package generator

import (
	"errors"
	"fmt"
	"slices"

	"pokkit-datagen/internal/schema"
)

var (
	ErrEmptyRegistry  = errors.New("generator registry is empty")
	ErrInvalidWeight  = errors.New("generator weight must be positive")
	ErrDuplicateName  = errors.New("duplicate generator name")
	ErrNilGenerator   = errors.New("generator function is nil")
	ErrUnnamedEntries = errors.New("generator name is empty")
)

// Func 生成一条已链接、已组装的样本
type Func func(k *Kit) schema.Example

// Entry 注册表中的一项
type Entry struct {
	Name   string
	Weight int
	Fn     Func
}

// Registry 生成器注册表，构造后不可修改
type Registry struct {
	entries []Entry
}

// NewRegistry 校验并创建注册表
func NewRegistry(entries ...Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRegistry
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		switch {
		case e.Name == "":
			return nil, ErrUnnamedEntries
		case e.Weight <= 0:
			return nil, fmt.Errorf("%w: %s has weight %d", ErrInvalidWeight, e.Name, e.Weight)
		case e.Fn == nil:
			return nil, fmt.Errorf("%w: %s", ErrNilGenerator, e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	return &Registry{entries: slices.Clone(entries)}, nil
}

// MustRegistry 同 NewRegistry，出错时 panic，用于包级静态注册表
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Entries 返回所有条目的副本
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Names 按注册顺序返回生成器名
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup 按名字查找生成器
func (r *Registry) Lookup(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// TotalWeight 权重之和
func (r *Registry) TotalWeight() int {
	total := 0
	for _, e := range r.entries {
		total += e.Weight
	}
	return total
}

// Sampler 按权重抽取生成器。
// 权重被展开成一个扁平的下标池，每次从池中均匀抽取，
// 所以权重 w 的生成器被选中的概率正好是权重 1 的 w 倍，与模板表大小无关。
type Sampler struct {
	reg  *Registry
	pool []int
}

// NewSampler 创建采样器
func NewSampler(reg *Registry) *Sampler {
	pool := make([]int, 0, reg.TotalWeight())
	for i, e := range reg.entries {
		for range e.Weight {
			pool = append(pool, i)
		}
	}
	return &Sampler{reg: reg, pool: pool}
}

// Sample 抽取一个生成器并运行，返回生成器名和样本。不做重试。
func (s *Sampler) Sample(k *Kit) (string, schema.Example) {
	e := s.reg.entries[s.pool[k.Intn(len(s.pool))]]
	return e.Name, e.Fn(k)
}

// Probability 返回某个生成器被选中的概率
func (s *Sampler) Probability(name string) float64 {
	e, ok := s.reg.Lookup(name)
	if !ok {
		return 0
	}
	return float64(e.Weight) / float64(len(s.pool))
}
