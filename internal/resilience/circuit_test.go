package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail(_ context.Context) error { return errBoom }
func succeed(_ context.Context) error { return nil }

func testBreaker(threshold int) (*Breaker, *time.Time) {
	now := time.Unix(1_700_000_000, 0)
	b := NewBreaker(BreakerConfig{FailureThreshold: threshold, ResetTimeout: time.Minute})
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b, _ := testBreaker(3)
	ctx := context.Background()

	for range 3 {
		assert.ErrorIs(t, b.Execute(ctx, fail), errBoom)
	}
	assert.Equal(t, Open, b.State())

	called := false
	err := b.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b, _ := testBreaker(3)
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	_ = b.Execute(ctx, fail)
	require.NoError(t, b.Execute(ctx, succeed))
	_ = b.Execute(ctx, fail)
	_ = b.Execute(ctx, fail)
	assert.Equal(t, Closed, b.State())
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b, now := testBreaker(1)
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	assert.Equal(t, Open, b.State())

	*now = now.Add(time.Minute)
	assert.Equal(t, HalfOpen, b.State())

	require.NoError(t, b.Execute(ctx, succeed))
	assert.Equal(t, Closed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, now := testBreaker(1)
	ctx := context.Background()

	var transitions []string
	b.cfg.OnStateChange = func(from, to State) { transitions = append(transitions, from.String()+">"+to.String()) }

	_ = b.Execute(ctx, fail)
	*now = now.Add(2 * time.Minute)
	_ = b.Execute(ctx, fail)

	assert.Equal(t, Open, b.State())
	assert.Equal(t, []string{"closed>open", "open>half-open", "half-open>open"}, transitions)
}

func TestBreaker_ShouldTrip(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, ShouldTrip: IsTransient})
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	assert.Equal(t, Closed, b.State())

	_ = b.Execute(ctx, func(context.Context) error { return NewTransientError(errBoom) })
	assert.Equal(t, Open, b.State())
}

func TestExecuteVal(t *testing.T) {
	b, _ := testBreaker(1)
	v, err := ExecuteVal(context.Background(), b, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, _ = ExecuteVal(context.Background(), b, func(context.Context) (int, error) { return 0, errBoom })
	v, err = ExecuteVal(context.Background(), b, func(context.Context) (int, error) { return 9, nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, v)
}

func TestBreaker_Concurrent(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1000})
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = b.Execute(context.Background(), fail)
				return
			}
			_ = b.Execute(context.Background(), succeed)
		}()
	}
	wg.Wait()
	assert.Equal(t, Closed, b.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "half-open", HalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}
