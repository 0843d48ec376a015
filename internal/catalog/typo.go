package catalog

import (
	"strings"

	"pokkit-datagen/internal/generator"
)

// TypoRate 用户输入被加噪的概率
const TypoRate = 0.22

var typoOps = []func(string) string{
	func(s string) string { return strings.Replace(s, "remind", "remnd", 1) },
	func(s string) string { return strings.Replace(s, "alarm", "alrm", 1) },
	func(s string) string { return strings.Replace(s, "email", "emial", 1) },
	func(s string) string { return strings.Replace(s, "search", "serach", 1) },
	func(s string) string { return strings.Replace(s, "tomorrow", "tommorow", 1) },
	func(s string) string { return strings.Replace(s, "please", "pls", 1) },
	func(s string) string { return strings.Replace(s, "can you", "can u", 1) },
	strings.ToLower,
	func(s string) string { return s + "!" },
	func(s string) string { return s + "?" },
	func(s string) string { return strings.ReplaceAll(s, ".", "") },
}

// Typo 以 TypoRate 的概率对用户输入做一次随机扰动，模拟真实用户的打字习惯
func Typo(k *generator.Kit, s string) string {
	if !k.Chance(TypoRate) {
		return s
	}
	return generator.Pick(k, typoOps)(s)
}
