package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/catalog"
	"pokkit-datagen/internal/dedup"
	"pokkit-datagen/internal/generator"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/validator"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T, reg *generator.Registry, opts Options, extra ...Option) *Engine {
	t.Helper()
	v, err := validator.ForRegistry(tools.Pokkit())
	require.NoError(t, err)
	if opts.System == "" {
		opts.System = catalog.SystemPrompt
	}
	return New(reg, v, assembler.New(tools.Pokkit().List()), opts, append([]Option{WithLogger(quietLogger())}, extra...)...)
}

func run(t *testing.T, e *Engine) (string, string, Report) {
	t.Helper()
	var train, eval bytes.Buffer
	rep, err := e.Run(context.Background(), &train, &eval)
	require.NoError(t, err)
	return train.String(), eval.String(), rep
}

func readLines(t *testing.T, s string) []schema.Example {
	t.Helper()
	out, err := jsonl.ReadAll(strings.NewReader(s))
	require.NoError(t, err)
	return out
}

func TestRun_Deterministic(t *testing.T) {
	opts := Options{Count: 200, EvalCount: 30, Seed: 42, Mode: validator.Strict}

	t1, e1, _ := run(t, newEngine(t, catalog.Default(), opts))
	t2, e2, _ := run(t, newEngine(t, catalog.Default(), opts))

	assert.Equal(t, t1, t2)
	assert.Equal(t, e1, e2)

	t3, _, _ := run(t, newEngine(t, catalog.Default(), Options{Count: 200, Seed: 43, Mode: validator.Strict}))
	assert.NotEqual(t, t1, t3)
}

func TestRun_LinkageAndNoOrphans(t *testing.T) {
	train, _, rep := run(t, newEngine(t, catalog.Default(), Options{Count: 300, Seed: 7, Mode: validator.Strict}))
	examples := readLines(t, train)
	assert.Len(t, examples, rep.Written())

	ids := map[string]bool{}
	for _, ex := range examples {
		require.Equal(t, schema.RoleSystem, ex.Messages[0].Role)

		calls := map[string]string{}
		for _, m := range ex.Messages {
			for _, tc := range m.ToolCalls {
				require.NotEmpty(t, tc.ID)
				require.False(t, ids[tc.ID], "id reused: %s", tc.ID)
				ids[tc.ID] = true
				calls[tc.ID] = tc.Function.Name
			}
			if m.Role == schema.RoleTool {
				name, ok := calls[m.ToolCallID]
				require.True(t, ok, "orphaned tool result")
				require.Equal(t, name, m.Name)
			}
		}
	}
}

func TestRun_TrainEvalDisjoint(t *testing.T) {
	train, eval, rep := run(t, newEngine(t, catalog.Default(), Options{Count: 300, EvalCount: 60, Seed: 1, Mode: validator.Strict}))

	seen := map[uint64]bool{}
	for _, ex := range readLines(t, train) {
		seen[dedup.Fingerprint(ex)] = true
	}
	evalExamples := readLines(t, eval)
	require.NotEmpty(t, evalExamples)
	for _, ex := range evalExamples {
		assert.False(t, seen[dedup.Fingerprint(ex)], "eval example leaked from train")
	}

	s, ok := rep.Split(SplitEval)
	require.True(t, ok)
	assert.Equal(t, int64(1+DefaultEvalSeedOffset), s.Seed)
}

func TestRun_NativeObjectArgumentsNeverWritten(t *testing.T) {
	bad := func(k *generator.Kit) schema.Example {
		call := schema.Call(tools.SetAlarm, nil)
		call.ToolCalls[0].Function.Arguments = json.RawMessage(`{"title":"x","hour":7,"minute":0}`)
		return k.Example(schema.User("wake me"), call, schema.Result(map[string]any{"success": true}), schema.Assistant("ok"))
	}
	reg := generator.MustRegistry(
		generator.Entry{Name: "bad", Weight: 1, Fn: bad},
		generator.Entry{Name: "alarm", Weight: 1, Fn: catalog.Alarm},
	)

	rec := &fakeRecorder{}
	train, _, rep := run(t, newEngine(t, reg, Options{Count: 40, Seed: 3, Mode: validator.Permissive, WarnCap: 2}, WithRecorder(rec)))

	for _, ex := range readLines(t, train) {
		for _, tc := range ex.ToolCalls() {
			assert.Equal(t, byte('"'), tc.Function.Arguments[0])
		}
	}
	assert.Positive(t, rep.Rejected()[validator.MalformedToolCall])
	assert.Len(t, rep.Warnings, 2)
	assert.Equal(t, rep.Rejected()[validator.MalformedToolCall]-2, rep.Suppressed)
	assert.Len(t, rec.generators, rep.Rejected()[validator.MalformedToolCall])
	assert.Equal(t, "bad", rec.generators[0])
}

func TestRun_DuplicatesCounted(t *testing.T) {
	same := func(k *generator.Kit) schema.Example {
		return k.Example(schema.User("hi"), schema.Assistant("hey 🐸"))
	}
	reg := generator.MustRegistry(generator.Entry{Name: "same", Weight: 1, Fn: same})

	train, eval, rep := run(t, newEngine(t, reg, Options{Count: 3, EvalCount: 2, Seed: 5}))

	assert.Len(t, readLines(t, train), 1)
	assert.Empty(t, eval)

	tr, _ := rep.Split(SplitTrain)
	assert.Equal(t, 1, tr.Written)
	assert.Equal(t, 15, tr.Attempts)
	assert.Equal(t, 14, tr.Duplicates)
	assert.Equal(t, 2, tr.Shortfall())

	ev, _ := rep.Split(SplitEval)
	assert.Equal(t, 0, ev.Written)
	assert.Equal(t, 10, ev.Attempts)
	assert.Equal(t, 2, ev.Shortfall())
	assert.Equal(t, 4, rep.Shortfall())
}

func TestRun_SameTextDifferentArgumentsIsDuplicate(t *testing.T) {
	hours := 0
	alarm := func(k *generator.Kit) schema.Example {
		hours++
		return k.Example(
			schema.User("wake me up"),
			schema.Call(tools.SetAlarm, map[string]any{"title": "Wake up", "hour": hours % 24, "minute": 0}),
			schema.Result(map[string]any{"success": true}),
			schema.Assistant("⏰ done 🐸"),
		)
	}
	reg := generator.MustRegistry(generator.Entry{Name: "alarm", Weight: 1, Fn: alarm})

	train, _, rep := run(t, newEngine(t, reg, Options{Count: 5, Seed: 4, Mode: validator.Strict}))

	assert.Len(t, readLines(t, train), 1)
	tr, _ := rep.Split(SplitTrain)
	assert.Equal(t, 1, tr.Written)
	assert.Equal(t, 25, tr.Attempts)
	assert.Equal(t, 24, tr.Duplicates)
	assert.Zero(t, tr.RejectedTotal())
}

func TestRun_DefaultTargetsFilled(t *testing.T) {
	if testing.Short() {
		t.Skip("generates the full default corpus")
	}
	_, _, rep := run(t, newEngine(t, catalog.Default(), Options{Count: 5000, EvalCount: 500, Seed: 42, Mode: validator.Strict}))

	tr, _ := rep.Split(SplitTrain)
	ev, _ := rep.Split(SplitEval)
	assert.Equal(t, 5000, tr.Written)
	assert.Equal(t, 500, ev.Written)
	assert.Zero(t, rep.Shortfall())
}

func TestRun_EvalShortfallWithTinyRegistry(t *testing.T) {
	replies := []string{"a", "b", "c", "d"}
	tiny := func(k *generator.Kit) schema.Example {
		return k.Example(schema.User("yo"), schema.Assistant(generator.Pick(k, replies)))
	}
	reg := generator.MustRegistry(generator.Entry{Name: "tiny", Weight: 1, Fn: tiny})

	train, eval, rep := run(t, newEngine(t, reg, Options{Count: 3, EvalCount: 5, Seed: 9, AttemptFactor: 4}))

	trainN := len(readLines(t, train))
	evalN := len(readLines(t, eval))
	assert.LessOrEqual(t, trainN+evalN, len(replies))
	assert.Less(t, evalN, 5)

	ev, _ := rep.Split(SplitEval)
	assert.Equal(t, 20, ev.Attempts)
	assert.Positive(t, ev.Shortfall())
}

func TestRun_ProgressAndSkipEval(t *testing.T) {
	var calls []int
	e := newEngine(t, catalog.Default(), Options{Count: 50, EvalCount: 10, Seed: 2, ProgressEvery: 10, Mode: validator.Strict},
		WithProgress(func(split string, written, target int) {
			assert.Equal(t, SplitTrain, split)
			assert.Equal(t, 50, target)
			calls = append(calls, written)
		}))

	var train bytes.Buffer
	rep, err := e.Run(context.Background(), &train, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, calls)
	assert.Len(t, rep.Splits, 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteErrorIsFatal(t *testing.T) {
	e := newEngine(t, catalog.Default(), Options{Count: 5000, Seed: 1})
	_, err := e.Run(context.Background(), failingWriter{}, nil)
	assert.ErrorContains(t, err, "disk full")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newEngine(t, catalog.Default(), Options{Count: 10, Seed: 1})
	_, err := e.Run(ctx, io.Discard, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeRecorder struct {
	generators []string
}

func (f *fakeRecorder) LogRejection(_, generator string, _ error, _ schema.Example) error {
	f.generators = append(f.generators, generator)
	return nil
}
