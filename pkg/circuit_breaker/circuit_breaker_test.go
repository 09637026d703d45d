package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tTrmc/library-service/pkg/circuit_breaker"
)

func TestCircuitBreaker_TripAndRecover(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("gateway error") }

	cb := circuit_breaker.NewCircuitBreaker(10, 100*time.Millisecond, 0.5, 2)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// enough failures to exceed the percentile trips the breaker
	for i := 0; i < 10; i++ {
		_ = cb.Call(fail)
	}
	err := cb.Call(ok)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

	// after the timeout the breaker half-opens and successes close it
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}
}

func TestCircuitBreaker_StaysClosedBelowPercentile(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("gateway error") }

	cb := circuit_breaker.NewCircuitBreaker(10, time.Second, 0.9, 1)

	for i := 0; i < 8; i++ {
		require.NoError(t, cb.Call(ok))
	}
	for i := 0; i < 2; i++ {
		require.Error(t, cb.Call(fail))
	}
	require.NoError(t, cb.Call(ok))
}
