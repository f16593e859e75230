package debounced

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/glacyr/debounced"

type instruments struct {
	emitted   metric.Int64Counter
	coalesced metric.Int64Counter
	flushed   metric.Int64Counter
	discarded metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) *instruments {
	meter := mp.Meter(instrumentationName)
	i := &instruments{}
	var err error
	if i.emitted, err = meter.Int64Counter(
		"debounced.emitted",
		metric.WithDescription("Values emitted after a full quiet period."),
	); err != nil {
		otel.Handle(err)
	}
	if i.coalesced, err = meter.Int64Counter(
		"debounced.coalesced",
		metric.WithDescription("Buffered values overwritten by a newer arrival."),
	); err != nil {
		otel.Handle(err)
	}
	if i.flushed, err = meter.Int64Counter(
		"debounced.flushed",
		metric.WithDescription("Values emitted by the end-of-source flush."),
	); err != nil {
		otel.Handle(err)
	}
	if i.discarded, err = meter.Int64Counter(
		"debounced.discarded",
		metric.WithDescription("Buffered values discarded because the source failed."),
	); err != nil {
		otel.Handle(err)
	}
	return i
}
