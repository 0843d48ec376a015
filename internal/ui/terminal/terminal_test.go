package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"Hello", 5},
		{"🐸", 2},
		{"🐸 Pokkit", 9},
		{"你好世界", 8},
		{"日本語", 6},
		{"Model: 模型-01", 14},
		{"\033[1m\033[36mbold\033[0m", 4},
		{"é", 1},
		{"⚙️", 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DisplayWidth(c.in), "%q", c.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "Hello…", Truncate("Hello World", 6))
	assert.Equal(t, "你好…", Truncate("你好世界", 5))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "a", Truncate("abc", 1))
	assert.Equal(t, "red…", Truncate("\033[31mredtext\033[0m", 4))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", Pad("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", Pad("ab", 5, AlignCenter))
	assert.Equal(t, "你好 ", Pad("你好", 5, AlignLeft))
	assert.Equal(t, "🐸  ", Pad("🐸", 4, AlignLeft))
	assert.Equal(t, "toolong", Pad("toolong", 3, AlignLeft))
}

func TestBox(t *testing.T) {
	out := Box("🐸 Done", "written: 10")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, DisplayWidth(lines[0]), DisplayWidth(l))
	}
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "written   42", Row("written", 10, "42"))
}
