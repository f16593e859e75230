package debounced

import (
	"github.com/glacyr/debounced/clock"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Option configures a combinator.
type Option func(*options)

type options struct {
	clock clock.Clock
	log   zerolog.Logger
	meter metric.MeterProvider
}

// WithClock replaces the wall clock driving the timers. Tests use it with
// [clock.NewFake] to advance time deterministically.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger attaches a logger for trace-level state-transition events. By
// default nothing is logged.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMeterProvider enables OpenTelemetry counters for emitted, coalesced,
// flushed and discarded items. By default metrics are no-ops; the global
// provider is never used implicitly.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meter = mp
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		clock: clock.Real(),
		log:   zerolog.Nop(),
		meter: noop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
