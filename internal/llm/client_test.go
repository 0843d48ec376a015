package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/retry"
)

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func fastRetry() *retry.Config {
	return &retry.Config{
		Enabled:         true,
		MaxRetries:      2,
		InitialDelay:    time.Millisecond,
		MaxDelay:        time.Millisecond,
		ExponentialBase: 2,
	}
}

func TestClient_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody("  hi there 🐸 \n"))
	}))
	defer srv.Close()

	c := NewClient("sk-test", srv.URL, "test-model", WithSampling(0.9, 300), WithRetryConfig(fastRetry()))
	text, err := c.Complete(context.Background(), "You are Pokkit.", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there 🐸", text)

	assert.Equal(t, "test-model", got["model"])
	assert.InDelta(t, 0.9, got["temperature"], 1e-9)
	assert.EqualValues(t, 300, got["max_tokens"])
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "hello", msgs[1].(map[string]any)["content"])
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody("finally"))
	}))
	defer srv.Close()

	var retried int
	c := NewClient("k", srv.URL, "m",
		WithRetryConfig(fastRetry()),
		WithRetryCallback(func(error, int) { retried++ }),
	)
	text, err := c.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "finally", text)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 2, retried)
}

func TestClient_DoesNotRetryBadRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"message":"bad model"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL, "m", WithRetryConfig(fastRetry()))
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody("   "))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL, "m", WithRetryConfig(fastRetry()))
	_, err := c.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
