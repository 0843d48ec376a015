package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries int) *Config {
	return &Config{
		Enabled:         true,
		MaxRetries:      retries,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		ExponentialBase: 2,
	}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	var retried []int

	got, err := Do(context.Background(), fastConfig(3), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("boom")
		}
		return "ok", nil
	}, func(_ error, attempt int) { retried = append(retried, attempt) })

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_Exhausted(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Do(context.Background(), fastConfig(2), func() (int, error) {
		calls++
		return 0, boom
	}, nil)

	var ex *ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 3, ex.Attempts)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestDo_NonRetryable(t *testing.T) {
	fatal := errors.New("bad request")
	cfg := fastConfig(5)
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	calls := 0
	_, err := Do(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, fatal
	}, nil)
	assert.Equal(t, fatal, err)
	assert.Equal(t, 1, calls)
}

func TestDo_Disabled(t *testing.T) {
	cfg := fastConfig(5)
	cfg.Enabled = false
	calls := 0
	_, err := Do(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, errors.New("x")
	}, nil)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(10)
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	done := make(chan error, 1)
	go func() {
		_, err := Do(ctx, cfg, func() (int, error) { return 0, errors.New("x") }, nil)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after cancel")
	}
}

func TestCalculateDelay(t *testing.T) {
	cfg := &Config{InitialDelay: time.Second, MaxDelay: 10 * time.Second, ExponentialBase: 2}
	assert.Equal(t, time.Second, cfg.CalculateDelay(0))
	assert.Equal(t, 4*time.Second, cfg.CalculateDelay(2))
	assert.Equal(t, 10*time.Second, cfg.CalculateDelay(8))
}

func TestFromSeconds(t *testing.T) {
	cfg := FromSeconds(true, 4, 0.5, 30, 3)
	assert.Equal(t, 500*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 4, cfg.MaxRetries)
	assert.InDelta(t, 3.0, cfg.ExponentialBase, 1e-9)
}
