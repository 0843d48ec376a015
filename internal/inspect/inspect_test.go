package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/chatml"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tokenizer"
)

func call(name string, id string) schema.Message {
	m := schema.Call(name, map[string]any{"q": "x"})
	m.ToolCalls[0].ID = id
	return m
}

func result(name, id string) schema.Message {
	m := schema.Result(map[string]any{"success": true})
	m.ToolCallID, m.Name = id, name
	return m
}

func dataset(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := jsonl.NewWriter(&buf)

	examples := []schema.Example{
		{Messages: []schema.Message{schema.System("s"), schema.User("hi"), schema.Assistant("hey 🐸")}},
		{Messages: []schema.Message{
			schema.System("s"), schema.User("alarm"),
			call("set_alarm", "a"), result("set_alarm", "a"), schema.Assistant("done"),
		}},
		{Messages: []schema.Message{
			schema.System("s"), schema.User("search then note"),
			call("web_search", "b"), result("web_search", "b"),
			call("save_note", "c"), result("save_note", "c"),
			call("web_search", "d"), result("web_search", "d"),
			schema.Assistant("saved"),
		}},
	}
	for _, ex := range examples {
		require.NoError(t, w.Write(ex))
	}
	require.NoError(t, w.Flush())
	return &buf
}

func newInspector(t *testing.T, samples ...int) *Inspector {
	t.Helper()
	r, err := chatml.New()
	require.NoError(t, err)
	return New(tokenizer.Fallback(), r, samples...)
}

func TestRun(t *testing.T) {
	st, err := newInspector(t, 0).Run(dataset(t))
	require.NoError(t, err)

	assert.Equal(t, 3, st.Examples)
	assert.Equal(t, 3+5+9, st.Messages)
	assert.InDelta(t, 17.0/3.0, st.AvgMessages(), 1e-9)
	assert.Positive(t, st.Tokens)
	assert.Positive(t, st.AvgTokens())
	assert.Equal(t, 2, st.MultiStep)

	assert.Equal(t, []ToolCount{
		{Name: "web_search", Count: 2},
		{Name: "save_note", Count: 1},
		{Name: "set_alarm", Count: 1},
	}, st.Distribution())

	require.Len(t, st.Samples, 2)
	assert.Equal(t, 0, st.Samples[0].Index)
	assert.Contains(t, st.Samples[0].Rendering, "hey 🐸")
	assert.Equal(t, 2, st.Samples[1].Index)
	assert.Contains(t, st.Samples[1].Rendering, `"name":"save_note"`)
}

func TestRun_SkipsMalformed(t *testing.T) {
	in := strings.NewReader("{not json}\n\n" + dataset(t).String())
	st, err := newInspector(t).Run(in)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Malformed)
	assert.Equal(t, 3, st.Examples)
}

func TestStats_Empty(t *testing.T) {
	st, err := newInspector(t).Run(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, st.AvgMessages())
	assert.Zero(t, st.AvgTokens())
	assert.Empty(t, st.Distribution())
	assert.Equal(t, -1, st.MultiStep)
}
