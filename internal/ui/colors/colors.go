// Package colors 终端颜色与样式。
package colors

import "os"

// Terminal color and style codes used by the CLI.
const (
	RESET = "\033[0m"
	BOLD  = "\033[1m"
	DIM   = "\033[2m"

	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	BRIGHT_GREEN  = "\033[92m"
	BRIGHT_YELLOW = "\033[93m"
	BRIGHT_CYAN   = "\033[96m"
)

// Enabled 为 false 时 Paint 原样返回文本。设置 NO_COLOR 环境变量即可关闭颜色。
var Enabled = os.Getenv("NO_COLOR") == ""

// Paint 用若干样式包裹文本并在末尾复位
func Paint(text string, styles ...string) string {
	if !Enabled || len(styles) == 0 {
		return text
	}
	prefix := ""
	for _, s := range styles {
		prefix += s
	}
	return prefix + text + RESET
}
