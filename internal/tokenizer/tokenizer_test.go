package tokenizer

import (
	"errors"
	"testing"

	"github.com/pkoukk/tiktoken-go"
	"github.com/stretchr/testify/assert"
)

func TestFallbackCounter(t *testing.T) {
	c := Fallback()
	assert.False(t, c.Exact())
	assert.Equal(t, 0, c.Count(""))
	assert.Equal(t, 4, c.Count("0123456789"))
}

func TestCounter_LoadFailureFallsBack(t *testing.T) {
	calls := 0
	c := &Counter{load: func() (*tiktoken.Tiktoken, error) {
		calls++
		return nil, errors.New("offline")
	}}

	assert.Equal(t, Estimate("hello world"), c.Count("hello world"))
	assert.Equal(t, Estimate("again"), c.Count("again"))
	assert.Equal(t, 1, calls)
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, 0, Estimate("ab"))
	assert.Equal(t, 2, Estimate("hello"))
}
