// Package audit 重新读取数据集，找出结构错误、违反语气规则和重复的样本。
package audit

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"pokkit-datagen/internal/dedup"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/validator"
)

// IssueKind 问题类别
type IssueKind string

const (
	IssueStructural        IssueKind = "structural"
	IssueBannedPhrase      IssueKind = "banned_phrase"
	IssueMultipleQuestions IssueKind = "multiple_questions"
	IssueTooLong           IssueKind = "too_long"
	IssueDuplicate         IssueKind = "duplicate"
)

// DefaultMaxWords assistant 单轮最大词数（含代码块的回复不受限）
const DefaultMaxWords = 100

// DefaultBannedPhrases 客套和空洞的填充语
var DefaultBannedPhrases = []string{
	"of course!",
	"absolutely!",
	"certainly!",
	"sure thing!",
	"happy to help",
	"great question",
	"no problem!",
	"you got it!",
	"i'd be happy to",
	"i'm here for you",
	"is there anything else",
	"let me know if you need",
	"i understand that",
	"as an ai",
	"i hope this helps",
	"feel free to",
	"don't hesitate to",
	"of course, i",
	"absolutely, i",
	"great, i",
	"sure, i",
}

var codeBlock = regexp.MustCompile("(?s)```.*?```")

// Rules 审计规则
type Rules struct {
	MaxWords      int
	BannedPhrases []string
}

// DefaultRules 默认规则
func DefaultRules() Rules {
	return Rules{MaxWords: DefaultMaxWords, BannedPhrases: DefaultBannedPhrases}
}

// Issue 一个问题。Turn 是消息下标，整条样本级别的问题为 -1。
type Issue struct {
	Kind   IssueKind
	Turn   int
	Detail string
}

func (i Issue) String() string {
	if i.Turn < 0 {
		return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
	}
	return fmt.Sprintf("%s (turn %d): %s", i.Kind, i.Turn, i.Detail)
}

// Finding 有问题的样本
type Finding struct {
	Line    int
	Example schema.Example
	Issues  []Issue
}

// Report 审计汇总
type Report struct {
	Total     int
	Clean     int
	Malformed int
	Counts    map[IssueKind]int
	Findings  []Finding
}

// Contaminated 有问题的样本数
func (r *Report) Contaminated() int {
	return len(r.Findings)
}

// Auditor 审计器。会记住已见过的指纹，一个实例只审计一个数据集。
type Auditor struct {
	rules  Rules
	v      *validator.Validator
	seen   *dedup.Set
	banned []string
}

// New 创建审计器；结构检查使用 permissive 模式
func New(v *validator.Validator, rules Rules) *Auditor {
	if rules.MaxWords <= 0 {
		rules.MaxWords = DefaultMaxWords
	}
	banned := make([]string, 0, len(rules.BannedPhrases))
	for _, p := range rules.BannedPhrases {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			banned = append(banned, p)
		}
	}
	return &Auditor{rules: rules, v: v, seen: dedup.NewSet(), banned: banned}
}

// Check 返回样本的全部问题，没有问题时返回 nil
func (a *Auditor) Check(ex schema.Example) []Issue {
	var issues []Issue

	if err := a.v.Validate(ex, validator.Permissive); err != nil {
		issues = append(issues, Issue{Kind: IssueStructural, Turn: -1, Detail: err.Error()})
	}

	for i, m := range ex.Messages {
		if m.Role != schema.RoleAssistant || m.Text() == "" {
			continue
		}
		issues = append(issues, a.checkTurn(i, m.Text())...)
	}

	if !a.seen.AdmitExample(ex) {
		issues = append(issues, Issue{Kind: IssueDuplicate, Turn: -1, Detail: "visible text already seen"})
	}
	return issues
}

func (a *Auditor) checkTurn(turn int, text string) []Issue {
	var issues []Issue

	lower := strings.ToLower(text)
	for _, p := range a.banned {
		if strings.Contains(lower, p) {
			issues = append(issues, Issue{Kind: IssueBannedPhrase, Turn: turn, Detail: p})
			break
		}
	}

	if q := strings.Count(codeBlock.ReplaceAllString(text, ""), "?"); q > 1 {
		issues = append(issues, Issue{Kind: IssueMultipleQuestions, Turn: turn, Detail: fmt.Sprintf("%d questions", q)})
	}

	if !strings.Contains(text, "```") {
		if n := len(strings.Fields(text)); n > a.rules.MaxWords {
			issues = append(issues, Issue{Kind: IssueTooLong, Turn: turn, Detail: fmt.Sprintf("%d words", n)})
		}
	}
	return issues
}

// Run 审计整个数据集。clean 不为 nil 时把没有问题的样本写入其中。
// 无法解码的行计入 Malformed，不写入 clean。
func (a *Auditor) Run(r io.Reader, clean *jsonl.Writer) (*Report, error) {
	rep := &Report{Counts: make(map[IssueKind]int)}

	err := jsonl.Scan(r, func(rec jsonl.Record) error {
		if rec.Err != nil {
			rep.Malformed++
			return nil
		}
		rep.Total++

		issues := a.Check(rec.Example)
		if len(issues) == 0 {
			rep.Clean++
			if clean != nil {
				return clean.Write(rec.Example)
			}
			return nil
		}

		for _, is := range issues {
			rep.Counts[is.Kind]++
		}
		rep.Findings = append(rep.Findings, Finding{Line: rec.Line, Example: rec.Example, Issues: issues})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if clean != nil {
		if err := clean.Flush(); err != nil {
			return nil, err
		}
	}
	return rep, nil
}
