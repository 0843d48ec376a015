// Package browse 交互式浏览 JSONL 数据集。命令解析和渲染与终端输入分离，
// cmd 层用 go-prompt 驱动 Session.Execute。
package browse

import (
	"fmt"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
)

// previewWidth 单行内容的最大显示宽度
const previewWidth = 100

var commands = []prompt.Suggest{
	{Text: "/next", Description: "Show the next example"},
	{Text: "/prev", Description: "Show the previous example"},
	{Text: "/show", Description: "Show example N (1-based)"},
	{Text: "/find", Description: "Find the next example containing text"},
	{Text: "/tools", Description: "List tool calls of the current example"},
	{Text: "/help", Description: "Show help message"},
	{Text: "/exit", Description: "Exit browser"},
}

// Session 浏览状态
type Session struct {
	examples []schema.Example
	cur      int
}

// NewSession 创建会话，当前位置为第一条
func NewSession(examples []schema.Example) *Session {
	return &Session{examples: examples}
}

// Len 样本总数
func (s *Session) Len() int {
	return len(s.examples)
}

// Current 当前样本下标（从 0 开始）
func (s *Session) Current() int {
	return s.cur
}

// Completer go-prompt 补全器，只在行首补全命令
func Completer(d prompt.Document) []prompt.Suggest {
	text := strings.TrimSpace(d.TextBeforeCursor())
	if text == "" || (strings.HasPrefix(text, "/") && !strings.Contains(text, " ")) {
		return prompt.FilterHasPrefix(commands, text, true)
	}
	return []prompt.Suggest{}
}

// Execute 执行一行输入，返回要打印的文本；quit 为 true 时调用方应结束会话。
// 空行等同于 /next。
func (s *Session) Execute(line string) (out string, quit bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		input = "/next"
	}
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "/exit", "/quit", "/q", "exit", "quit", "q":
		return colors.Paint("👋 Bye", colors.BRIGHT_YELLOW), true
	case "/help":
		return help(), false
	}

	if len(s.examples) == 0 {
		return colors.Paint("⚠️  Dataset is empty", colors.YELLOW), false
	}

	switch strings.ToLower(cmd) {
	case "/next":
		if s.cur+1 >= len(s.examples) {
			return colors.Paint("⚠️  Already at the last example", colors.YELLOW), false
		}
		s.cur++
		return s.Render(), false
	case "/prev":
		if s.cur == 0 {
			return colors.Paint("⚠️  Already at the first example", colors.YELLOW), false
		}
		s.cur--
		return s.Render(), false
	case "/show":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(s.examples) {
			return colors.Paint(fmt.Sprintf("❌ Usage: /show N (1-%d)", len(s.examples)), colors.RED), false
		}
		s.cur = n - 1
		return s.Render(), false
	case "/find":
		if arg == "" {
			return colors.Paint("❌ Usage: /find text", colors.RED), false
		}
		idx := s.find(arg)
		if idx < 0 {
			return colors.Paint(fmt.Sprintf("❌ No example contains %q", arg), colors.RED), false
		}
		s.cur = idx
		return s.Render(), false
	case "/tools":
		return s.tools(), false
	default:
		return colors.Paint("❌ Unknown command: "+input, colors.RED) + "\n" +
			colors.Paint("Type /help to see available commands", colors.DIM), false
	}
}

// find 从当前位置之后开始查找，到末尾后回绕，不区分大小写
func (s *Session) find(text string) int {
	needle := strings.ToLower(text)
	n := len(s.examples)
	for step := 1; step <= n; step++ {
		i := (s.cur + step) % n
		for _, m := range s.examples[i].Messages {
			if m.Role != schema.RoleSystem && strings.Contains(strings.ToLower(m.Text()), needle) {
				return i
			}
		}
	}
	return -1
}

func (s *Session) tools() string {
	calls := s.examples[s.cur].ToolCalls()
	if len(calls) == 0 {
		return colors.Paint("No tool calls in this example", colors.DIM)
	}
	var sb strings.Builder
	for i, c := range calls {
		args, _ := c.Function.ArgumentsText()
		fmt.Fprintf(&sb, "%d. %s %s  %s\n", i+1,
			colors.Paint(c.Function.Name, colors.BOLD, colors.CYAN),
			colors.Paint(c.ID, colors.DIM),
			terminal.Truncate(args, previewWidth))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Render 渲染当前样本，system 消息不展示
func (s *Session) Render() string {
	ex := s.examples[s.cur]

	var sb strings.Builder
	sb.WriteString(colors.Paint(fmt.Sprintf("── Example %d/%d ──", s.cur+1, len(s.examples)), colors.BOLD, colors.BRIGHT_CYAN))
	sb.WriteString("\n")

	for _, m := range ex.Messages {
		role := terminal.Pad("["+string(m.Role)+"]", 12, terminal.AlignLeft)
		switch {
		case m.Role == schema.RoleSystem:
			continue
		case m.IsToolCall():
			for _, c := range m.ToolCalls {
				args, _ := c.Function.ArgumentsText()
				fmt.Fprintf(&sb, "%s %s %s  args=%s\n", colors.Paint(role, colors.GREEN),
					colors.Paint("CALL", colors.BOLD), c.Function.Name,
					terminal.Truncate(args, previewWidth-20))
			}
		case m.Role == schema.RoleTool:
			fmt.Fprintf(&sb, "%s %s\n", colors.Paint(role, colors.DIM), terminal.Truncate(m.Text(), previewWidth))
		case m.Role == schema.RoleUser:
			fmt.Fprintf(&sb, "%s %s\n", colors.Paint(role, colors.BRIGHT_YELLOW), terminal.Truncate(m.Text(), previewWidth))
		default:
			fmt.Fprintf(&sb, "%s %s\n", colors.Paint(role, colors.GREEN), terminal.Truncate(m.Text(), previewWidth))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func help() string {
	var sb strings.Builder
	sb.WriteString(colors.Paint("Available Commands:", colors.BOLD, colors.BRIGHT_YELLOW))
	sb.WriteString("\n")
	for _, c := range commands {
		fmt.Fprintf(&sb, "  %s - %s\n", colors.Paint(terminal.Pad(c.Text, 8, terminal.AlignLeft), colors.BRIGHT_GREEN), c.Description)
	}
	sb.WriteString(colors.Paint("  Enter on an empty line shows the next example", colors.DIM))
	return sb.String()
}
