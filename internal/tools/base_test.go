package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRegistry_KeepsRegistrationOrder(t *testing.T) {
	reg := NewToolRegistry(
		NewSpec("b", "second", nil),
		NewSpec("a", "first", nil),
	)
	reg.Register(NewSpec("b", "second v2", nil))

	require.Equal(t, []string{"b", "a"}, reg.Names())

	spec, ok := reg.Get("b")
	require.True(t, ok)
	assert.Equal(t, "second v2", spec.Function.Description)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestPokkitManifest(t *testing.T) {
	reg := Pokkit()
	names := reg.Names()

	for _, want := range []string{SetAlarm, WebSearch, TakeNote, WriteClipboard, ScreenTap, ScreenFindTap} {
		assert.Contains(t, names, want)
	}

	for _, spec := range reg.List() {
		assert.Equal(t, "function", spec.Type)
		assert.NotEmpty(t, spec.Function.Description, spec.Name())
		assert.Equal(t, "object", spec.Function.Parameters["type"], spec.Name())
	}

	// manifest 序列化必须稳定
	a, err := json.Marshal(reg.List())
	require.NoError(t, err)
	b, err := json.Marshal(Pokkit().List())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestParameters(t *testing.T) {
	params := Pokkit().Parameters()
	alarm, ok := params[SetAlarm]
	require.True(t, ok)
	assert.Equal(t, []string{"title", "hour", "minute"}, alarm["required"])
}
