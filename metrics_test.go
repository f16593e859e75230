package debounced_test

import (
	"context"
	"testing"
	"time"

	"github.com/glacyr/debounced"
	"github.com/glacyr/debounced/clock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestDebounceMetrics(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	fake := clock.NewFake()
	in := make(chan int)
	out := debounced.Debounce(ctx, in, time.Second,
		debounced.WithClock(fake),
		debounced.WithMeterProvider(provider),
	)

	// Act: one coalesced burst, one timer emission, one flush.
	in <- 21
	in <- 42
	fake.BlockUntilArmed(2)
	fake.Advance(time.Second)
	require.Equal(t, 42, <-out)

	in <- 7
	close(in)
	require.Equal(t, 7, <-out)
	_, ok := <-out
	require.False(t, ok)

	// Assert
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.EqualValues(t, 1, counterValue(t, rm, "debounced.coalesced"))
	require.EqualValues(t, 1, counterValue(t, rm, "debounced.emitted"))
	require.EqualValues(t, 1, counterValue(t, rm, "debounced.flushed"))
	require.EqualValues(t, 0, counterValue(t, rm, "debounced.discarded"))
}
