// Package terminal 计算终端显示宽度，并提供汇总表格用的对齐和边框工具。
package terminal

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Align 对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func runeWidth(r rune) int {
	switch {
	case unicode.Is(unicode.Mn, r), r == 0xFE0F, r == 0x200D:
		return 0
	case isEmoji(r):
		return 2
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF)
}

// StripANSI 去掉颜色控制符
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// DisplayWidth 返回字符串在终端中占用的列数，忽略 ANSI 控制符
func DisplayWidth(s string) int {
	w := 0
	for _, r := range StripANSI(s) {
		w += runeWidth(r)
	}
	return w
}

// Truncate 按显示宽度截断，超出时追加省略号
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	const ellipsis = "…"
	plain := StripANSI(text)
	if DisplayWidth(plain) <= maxWidth {
		return text
	}
	if maxWidth <= 1 {
		return truncateWidth(plain, maxWidth)
	}
	return truncateWidth(plain, maxWidth-1) + ellipsis
}

func truncateWidth(s string, max int) string {
	w := 0
	out := make([]rune, 0, len(s))
	for _, r := range s {
		rw := runeWidth(r)
		if w+rw > max {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}

// Pad 用空格补齐到目标宽度
func Pad(text string, target int, align Align) string {
	current := DisplayWidth(text)
	if current >= target {
		return text
	}

	pad := target - current
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

// Box 用圆角边框包住若干行，内部宽度取最长一行
func Box(lines ...string) string {
	inner := 0
	for _, l := range lines {
		inner = max(inner, DisplayWidth(l))
	}

	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", inner+2) + "╮\n")
	for _, l := range lines {
		sb.WriteString("│ " + Pad(l, inner, AlignLeft) + " │\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", inner+2) + "╯\n")
	return sb.String()
}

// Row 把 key 左对齐到 keyWidth 列后接 value
func Row(key string, keyWidth int, value string) string {
	return Pad(key, keyWidth, AlignLeft) + value
}
