package audit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/validator"
)

func newAuditor(t *testing.T) *Auditor {
	t.Helper()
	v, err := validator.ForRegistry(tools.Pokkit())
	require.NoError(t, err)
	return New(v, DefaultRules())
}

func chat(user, reply string) schema.Example {
	return schema.Example{Messages: []schema.Message{
		schema.System("You are Pokkit."),
		schema.User(user),
		schema.Assistant(reply),
	}}
}

func kinds(issues []Issue) []IssueKind {
	var out []IssueKind
	for _, i := range issues {
		out = append(out, i.Kind)
	}
	return out
}

func TestCheck_Clean(t *testing.T) {
	a := newAuditor(t)
	assert.Empty(t, a.Check(chat("hey", "hey yourself. 🐸 what's up?")))
}

func TestCheck_BannedPhrase(t *testing.T) {
	a := newAuditor(t)
	issues := a.Check(chat("help", "Of course! I'd be happy to help with that."))
	require.Len(t, issues, 1)
	assert.Equal(t, IssueBannedPhrase, issues[0].Kind)
	assert.Equal(t, 2, issues[0].Turn)
	assert.Equal(t, "of course!", issues[0].Detail)
}

func TestCheck_MultipleQuestions(t *testing.T) {
	a := newAuditor(t)
	assert.Equal(t, []IssueKind{IssueMultipleQuestions}, kinds(a.Check(chat("a", "what happened? are you ok?"))))

	// 代码块里的问号不算
	reply := "try this:\n```\nx = a ? b : c\ny = d ? e : f\n```\nworks?"
	assert.Empty(t, a.Check(chat("b", reply)))
}

func TestCheck_TooLong(t *testing.T) {
	a := newAuditor(t)
	long := strings.Repeat("word ", DefaultMaxWords+1)
	assert.Equal(t, []IssueKind{IssueTooLong}, kinds(a.Check(chat("a", long))))

	code := "```\n" + long + "\n```"
	assert.Empty(t, a.Check(chat("b", code)))
}

func TestCheck_CustomRules(t *testing.T) {
	v, err := validator.New(nil)
	require.NoError(t, err)
	a := New(v, Rules{MaxWords: 3, BannedPhrases: []string{"  Ribbit  ", ""}})

	got := kinds(a.Check(chat("a", "RIBBIT ribbit ribbit ribbit")))
	assert.ElementsMatch(t, []IssueKind{IssueBannedPhrase, IssueTooLong}, got)
}

func TestCheck_StructuralAndDuplicate(t *testing.T) {
	a := newAuditor(t)

	bad := schema.Example{Messages: []schema.Message{schema.User("no system")}}
	issues := a.Check(bad)
	require.NotEmpty(t, issues)
	assert.Equal(t, IssueStructural, issues[0].Kind)

	ex := chat("same", "same reply")
	assert.Empty(t, a.Check(ex))
	assert.Equal(t, []IssueKind{IssueDuplicate}, kinds(a.Check(ex)))
}

func TestCheck_PermissiveAllowsUnknownTools(t *testing.T) {
	a := newAuditor(t)
	call := schema.Call("launch_rocket", map[string]any{})
	call.ToolCalls[0].ID = "call_1"
	res := schema.Result(map[string]any{"success": true})
	res.ToolCallID, res.Name = "call_1", "launch_rocket"

	ex := schema.Example{Messages: []schema.Message{
		schema.System("s"), schema.User("go"), call, res, schema.Assistant("launched"),
	}}
	assert.Empty(t, a.Check(ex))
}

func TestRun_Purge(t *testing.T) {
	var in bytes.Buffer
	w := jsonl.NewWriter(&in)
	require.NoError(t, w.Write(chat("one", "fine. 🐸")))
	require.NoError(t, w.Write(chat("two", "Absolutely! great question?? really?")))
	require.NoError(t, w.Write(chat("one", "fine. 🐸")))
	require.NoError(t, w.Flush())
	in.WriteString("{broken\n")

	var out bytes.Buffer
	rep, err := newAuditor(t).Run(&in, jsonl.NewWriter(&out))
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Total)
	assert.Equal(t, 1, rep.Clean)
	assert.Equal(t, 1, rep.Malformed)
	assert.Equal(t, 2, rep.Contaminated())
	assert.Equal(t, 1, rep.Counts[IssueBannedPhrase])
	assert.Equal(t, 1, rep.Counts[IssueMultipleQuestions])
	assert.Equal(t, 1, rep.Counts[IssueDuplicate])
	assert.Equal(t, 2, rep.Findings[0].Line)
	assert.Equal(t, 3, rep.Findings[1].Line)

	kept, err := jsonl.ReadAll(&out)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "one", kept[0].Messages[1].Text())
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "duplicate: x", Issue{Kind: IssueDuplicate, Turn: -1, Detail: "x"}.String())
	assert.Equal(t, "too_long (turn 2): 120 words", Issue{Kind: IssueTooLong, Turn: 2, Detail: "120 words"}.String())
}
