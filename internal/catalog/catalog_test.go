package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/validator"
)

func newKit(seed int64) *generator.Kit {
	return generator.NewKit(seed, assembler.New(tools.Pokkit().List()), SystemPrompt)
}

func TestEveryGeneratorIsStrictValid(t *testing.T) {
	v, err := validator.ForRegistry(tools.Pokkit())
	require.NoError(t, err)

	for _, e := range Entries() {
		t.Run(e.Name, func(t *testing.T) {
			k := newKit(11)
			for range 60 {
				ex := e.Fn(k)
				require.NoError(t, v.Validate(ex, validator.Strict))
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	assert.Len(t, reg.Names(), len(Entries()))
	assert.Equal(t, 10, mustLookup(t, reg, "alarm").Weight)
}

func mustLookup(t *testing.T, reg *generator.Registry, name string) generator.Entry {
	t.Helper()
	e, ok := reg.Lookup(name)
	require.True(t, ok, name)
	return e
}

func TestAlarm_BasicScenario(t *testing.T) {
	k := newKit(5)
	for range 50 {
		ex := Alarm(k)
		require.Len(t, ex.Messages, 5)

		call := ex.Messages[2]
		require.True(t, call.IsToolCall())
		require.Len(t, call.ToolCalls, 1)
		tc := call.ToolCalls[0]
		assert.Equal(t, tools.SetAlarm, tc.Function.Name)
		assert.Nil(t, call.Content)

		args, err := tc.Function.DecodeArguments()
		require.NoError(t, err)
		hour, ok := args["hour"].(float64)
		require.True(t, ok, "hour must be a number")
		minute, ok := args["minute"].(float64)
		require.True(t, ok, "minute must be a number")
		assert.Equal(t, hour, float64(int(hour)))
		assert.GreaterOrEqual(t, hour, 0.0)
		assert.LessOrEqual(t, hour, 23.0)
		assert.GreaterOrEqual(t, minute, 0.0)
		assert.LessOrEqual(t, minute, 59.0)

		result := ex.Messages[3]
		assert.Equal(t, schema.RoleTool, result.Role)
		assert.Equal(t, tc.ID, result.ToolCallID)
		assert.Equal(t, tools.SetAlarm, result.Name)
	}
}

func TestArgumentsRoundTrip(t *testing.T) {
	k := newKit(8)
	ex := MultiTool(k)

	line, err := json.Marshal(ex)
	require.NoError(t, err)

	var back schema.Example
	require.NoError(t, json.Unmarshal(line, &back))

	orig, decoded := ex.ToolCalls(), back.ToolCalls()
	require.Equal(t, len(orig), len(decoded))
	for i := range orig {
		a, err := orig[i].Function.DecodeArguments()
		require.NoError(t, err)
		b, err := decoded[i].Function.DecodeArguments()
		require.NoError(t, err)
		assert.Equal(t, a, b)

		// arguments 在线上必须是字符串
		assert.Equal(t, byte('"'), decoded[i].Function.Arguments[0])
	}
}

func TestStoreRetrieve_ReadsBackValue(t *testing.T) {
	ex := StoreRetrieve(newKit(2))
	calls := ex.ToolCalls()
	require.Len(t, calls, 2)

	stored, err := calls[0].Function.DecodeArguments()
	require.NoError(t, err)
	fetched, err := calls[1].Function.DecodeArguments()
	require.NoError(t, err)
	assert.Equal(t, stored["key"], fetched["key"])
	assert.NotEqual(t, calls[0].ID, calls[1].ID)
}

func TestArchetypesUsePersona(t *testing.T) {
	k := newKit(4)
	for range 20 {
		assert.Equal(t, Sage.System, SageMode(k).Messages[0].Text())
		assert.Equal(t, Rival.System, RivalMode(k).Messages[0].Text())
	}
	assert.Equal(t, SystemPrompt, Support(k).Messages[0].Text())
	assert.Contains(t, Personas, "sage")
}

// 每种扰动都会改变这句话
const typoSentence = "OK can you search my email, set an alarm and remind me tomorrow please."

func TestTypo(t *testing.T) {
	k := newKit(1)
	changed := 0
	const n = 4000
	for range n {
		if Typo(k, typoSentence) != typoSentence {
			changed++
		}
	}
	assert.InDelta(t, TypoRate, float64(changed)/n, 0.03)
}

func TestFill(t *testing.T) {
	assert.Equal(t, "a=1 b=2 {c}", fill("a={a} b={b} {c}", "a", "1", "b", "2"))
}

func TestGeneratorsDeterministic(t *testing.T) {
	s := generator.NewSampler(Default())
	k1, k2 := newKit(99), newKit(99)
	for range 100 {
		n1, e1 := s.Sample(k1)
		n2, e2 := s.Sample(k2)
		require.Equal(t, n1, n2)
		b1, _ := json.Marshal(e1)
		b2, _ := json.Marshal(e2)
		require.Equal(t, string(b1), string(b2))
	}
}

func TestMemoryRecall_UsesRetrievedName(t *testing.T) {
	k := newKit(21)
	for range 30 {
		ex := MemoryRecall(k)
		calls := ex.ToolCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, tools.RetrieveValue, calls[0].Function.Name)
		assert.Equal(t, tools.SetAlarm, calls[1].Function.Name)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(ex.Messages[3].Text()), &got))
		name, ok := got["value"].(string)
		require.True(t, ok)

		args, err := calls[1].Function.DecodeArguments()
		require.NoError(t, err)
		assert.Contains(t, args["title"], name)
		assert.Contains(t, ex.Messages[len(ex.Messages)-1].Text(), name)
	}
}

func TestEmptyRecall_NullValue(t *testing.T) {
	k := newKit(6)
	stored := 0
	for range 40 {
		ex := EmptyRecall(k)
		assert.JSONEq(t, `{"value":null}`, ex.Messages[3].Text())
		assert.Equal(t, schema.RoleAssistant, ex.Messages[4].Role)
		if len(ex.ToolCalls()) > 1 {
			stored++
			assert.Equal(t, tools.StoreValue, ex.ToolCalls()[1].Function.Name)
		}
	}
	assert.Positive(t, stored)
}

func TestAmbiguous_ClarifiesBeforeCalling(t *testing.T) {
	k := newKit(13)
	for range 30 {
		ex := Ambiguous(k)
		require.GreaterOrEqual(t, len(ex.Messages), 5)
		assert.Equal(t, schema.RoleAssistant, ex.Messages[2].Role)
		assert.False(t, ex.Messages[2].IsToolCall())
		assert.True(t, ex.Messages[4].IsToolCall())
	}
}
