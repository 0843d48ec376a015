package browse

import (
	"strings"
	"testing"

	prompt "github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/ui/terminal"
)

func examples() []schema.Example {
	call := schema.Call("set_alarm", map[string]any{"hour": 7, "minute": 0})
	call.ToolCalls[0].ID = "call_abc"
	res := schema.Result(map[string]any{"success": true})
	res.ToolCallID, res.Name = "call_abc", "set_alarm"

	return []schema.Example{
		{Messages: []schema.Message{schema.System("sys"), schema.User("hey pokkit"), schema.Assistant("hey 🐸")}},
		{Messages: []schema.Message{schema.System("sys"), schema.User("wake me at 7"), call, res, schema.Assistant("Alarm set.")}},
		{Messages: []schema.Message{schema.System("sys"), schema.User("tell me a Joke"), schema.Assistant("no.")}},
	}
}

func exec(t *testing.T, s *Session, line string) string {
	t.Helper()
	out, quit := s.Execute(line)
	require.False(t, quit)
	return terminal.StripANSI(out)
}

func TestSession_Navigation(t *testing.T) {
	s := NewSession(examples())
	assert.Equal(t, 3, s.Len())

	assert.Contains(t, exec(t, s, "/prev"), "first example")
	assert.Contains(t, exec(t, s, "/next"), "Example 2/3")
	assert.Contains(t, exec(t, s, ""), "Example 3/3")
	assert.Contains(t, exec(t, s, "/next"), "last example")
	assert.Contains(t, exec(t, s, "/prev"), "Example 2/3")
	assert.Equal(t, 1, s.Current())
}

func TestSession_Show(t *testing.T) {
	s := NewSession(examples())
	out := exec(t, s, "/show 2")
	assert.Contains(t, out, "[user]       wake me at 7")
	assert.Contains(t, out, "CALL set_alarm")
	assert.Contains(t, out, `{"hour":7,"minute":0}`)
	assert.NotContains(t, out, "sys")

	assert.Contains(t, exec(t, s, "/show 9"), "Usage: /show N (1-3)")
	assert.Contains(t, exec(t, s, "/show x"), "Usage")
	assert.Equal(t, 1, s.Current())
}

func TestSession_Find(t *testing.T) {
	s := NewSession(examples())
	assert.Contains(t, exec(t, s, "/find joke"), "Example 3/3")
	// 回绕到开头
	assert.Contains(t, exec(t, s, "/find HEY"), "Example 1/3")
	assert.Contains(t, exec(t, s, "/find sys"), "No example contains")
	assert.Contains(t, exec(t, s, "/find"), "Usage: /find text")
}

func TestSession_Tools(t *testing.T) {
	s := NewSession(examples())
	assert.Contains(t, exec(t, s, "/tools"), "No tool calls")
	exec(t, s, "/show 2")
	out := exec(t, s, "/tools")
	assert.True(t, strings.HasPrefix(out, "1. set_alarm call_abc"))
}

func TestSession_HelpUnknownExit(t *testing.T) {
	s := NewSession(nil)
	assert.Contains(t, exec(t, s, "/help"), "/find")
	assert.Contains(t, exec(t, s, "/next"), "empty")

	s = NewSession(examples())
	assert.Contains(t, exec(t, s, "/frobnicate"), "Unknown command")

	_, quit := s.Execute("/exit")
	assert.True(t, quit)
	_, quit = s.Execute("q")
	assert.True(t, quit)
}

func TestCompleter(t *testing.T) {
	doc := func(text string) prompt.Document {
		buf := prompt.NewBuffer()
		buf.InsertText(text, false, true)
		return *buf.Document()
	}

	got := Completer(doc("/f"))
	require.Len(t, got, 1)
	assert.Equal(t, "/find", got[0].Text)

	assert.Len(t, Completer(doc("")), len(commands))
	assert.Empty(t, Completer(doc("/find frog")))
}
