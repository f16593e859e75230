package debounced_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/glacyr/debounced"
	"github.com/stretchr/testify/require"
)

func TestFuncCollapsesBurst(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	trigger, _ := debounced.Func(100*time.Millisecond, func() {
		calls.Add(1)
	})

	// Act: a burst of triggers well inside the quiet period.
	for i := 0; i < 5; i++ {
		trigger()
		time.Sleep(10 * time.Millisecond)
	}

	// Assert
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	// A second quiet period produces a second run.
	trigger()
	require.Eventually(t, func() bool {
		return calls.Load() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestFuncCancel(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	trigger, cancel := debounced.Func(50*time.Millisecond, func() {
		calls.Add(1)
	})

	// Act
	trigger()
	cancel()

	// Assert
	time.Sleep(150 * time.Millisecond)
	require.EqualValues(t, 0, calls.Load())
}

func TestFuncCancelBeforeTrigger(t *testing.T) {
	_, cancel := debounced.Func(50*time.Millisecond, func() {})
	require.NotPanics(t, cancel)
}

func TestFuncPanics(t *testing.T) {
	tests := []struct {
		fn    func()
		d     time.Duration
		title string
	}{
		{
			title: "non-positive duration",
			d:     0,
			fn:    func() {},
		},
		{
			title: "nil fn",
			d:     time.Second,
			fn:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			require.Panics(t, func() {
				debounced.Func(tt.d, tt.fn)
			})
		})
	}
}
