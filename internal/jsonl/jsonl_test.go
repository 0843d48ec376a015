package jsonl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
)

func sample(text string) schema.Example {
	return schema.Example{
		Messages: []schema.Message{
			schema.System("sys"),
			schema.User(text),
			schema.Assistant("ok <b> & 🐸"),
		},
		Tools: tools.Pokkit().List()[:1],
	}
}

func TestWriter_OneLinePerExample(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(sample("a")))
	require.NoError(t, w.Write(sample("b")))
	require.NoError(t, w.Flush())
	assert.Equal(t, 2, w.Count())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `{"messages":`))
	assert.Contains(t, lines[0], `"tools":`)
	assert.Contains(t, lines[0], "<b> & 🐸")
}

func TestWriter_NullContentOnToolCall(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	ex := schema.Example{Messages: []schema.Message{schema.Call("take_note", map[string]any{"title": "t"})}}
	require.NoError(t, w.Write(ex))
	require.NoError(t, w.Flush())

	assert.Contains(t, buf.String(), `"content":null`)
	assert.Contains(t, buf.String(), `"arguments":"{\"title\":\"t\"}"`)
}

func TestReadAll_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(sample("a")))
	require.NoError(t, w.Write(sample("b")))
	require.NoError(t, w.Flush())
	buf.WriteString("\n\n")

	got, err := ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Messages[1].Text())
}

func TestScan_ReportsBadLines(t *testing.T) {
	input := `{"messages":[]}` + "\n" + `not json` + "\n" + `{"messages":[],"tools":[]}` + "\n"

	var bad []int
	var good int
	err := Scan(strings.NewReader(input), func(rec Record) error {
		if rec.Err != nil {
			bad = append(bad, rec.Line)
			return nil
		}
		good++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, bad)
	assert.Equal(t, 2, good)

	_, err = ReadAll(strings.NewReader(input))
	assert.ErrorContains(t, err, "line 2")
}

func TestScan_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Scan(strings.NewReader("{}\n{}\n{}\n"), func(Record) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
