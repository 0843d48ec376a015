package pipeline

import (
	"slices"

	"pokkit-datagen/internal/validator"
)

// SplitReport 单个切分（train / eval）的统计
type SplitReport struct {
	Split      string                 `json:"split"`
	Seed       int64                  `json:"seed"`
	Target     int                    `json:"target"`
	Written    int                    `json:"written"`
	Attempts   int                    `json:"attempts"`
	Duplicates int                    `json:"duplicates"`
	Rejected   map[validator.Kind]int `json:"rejected,omitempty"`
}

// Shortfall 未达到目标的数量
func (s SplitReport) Shortfall() int {
	if s.Written >= s.Target {
		return 0
	}
	return s.Target - s.Written
}

// RejectedTotal 被校验器拒绝的总数
func (s SplitReport) RejectedTotal() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// Report 一次 generate 运行的汇总
type Report struct {
	Splits     []SplitReport `json:"splits"`
	Warnings   []string      `json:"warnings,omitempty"`
	Suppressed int           `json:"suppressed_warnings"`
}

// Generated 生成的候选总数
func (r Report) Generated() int {
	n := 0
	for _, s := range r.Splits {
		n += s.Attempts
	}
	return n
}

// Written 写出的样本总数
func (r Report) Written() int {
	n := 0
	for _, s := range r.Splits {
		n += s.Written
	}
	return n
}

// Duplicates 重复样本总数
func (r Report) Duplicates() int {
	n := 0
	for _, s := range r.Splits {
		n += s.Duplicates
	}
	return n
}

// Rejected 按类别汇总的拒绝数
func (r Report) Rejected() map[validator.Kind]int {
	out := make(map[validator.Kind]int)
	for _, s := range r.Splits {
		for k, n := range s.Rejected {
			out[k] += n
		}
	}
	return out
}

// Shortfall 各切分缺口之和
func (r Report) Shortfall() int {
	n := 0
	for _, s := range r.Splits {
		n += s.Shortfall()
	}
	return n
}

// Split 按名字取切分统计
func (r Report) Split(name string) (SplitReport, bool) {
	i := slices.IndexFunc(r.Splits, func(s SplitReport) bool { return s.Split == name })
	if i < 0 {
		return SplitReport{}, false
	}
	return r.Splits[i], true
}
