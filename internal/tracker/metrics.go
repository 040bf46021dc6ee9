package tracker

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/solwatch/internal/tracker"

type instruments struct {
	tracer trace.Tracer

	polls          metric.Int64Counter
	pollFailures   metric.Int64Counter
	recordsCreated metric.Int64Counter
	delivered      metric.Int64Counter
	suppressed     metric.Int64Counter
	watched        metric.Int64UpDownCounter
}

func newInstruments() *instruments {
	ins, err := buildInstruments(otel.Meter(instrumentationName))
	if err != nil {
		ins, _ = buildInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}

	ins.tracer = otel.Tracer(instrumentationName)
	return ins
}

func buildInstruments(meter metric.Meter) (*instruments, error) {
	var (
		ins instruments
		err error
	)

	if ins.polls, err = meter.Int64Counter("solwatch.tracker.polls",
		metric.WithDescription("Poll cycles executed")); err != nil {
		return nil, err
	}
	if ins.pollFailures, err = meter.Int64Counter("solwatch.tracker.poll_failures",
		metric.WithDescription("Poll cycles that ended with an error")); err != nil {
		return nil, err
	}
	if ins.recordsCreated, err = meter.Int64Counter("solwatch.tracker.records_created",
		metric.WithDescription("Transactions recorded for the first time")); err != nil {
		return nil, err
	}
	if ins.delivered, err = meter.Int64Counter("solwatch.tracker.notifications_delivered",
		metric.WithDescription("Events handed to subscribers")); err != nil {
		return nil, err
	}
	if ins.suppressed, err = meter.Int64Counter("solwatch.tracker.notifications_suppressed",
		metric.WithDescription("Events filtered out by notification settings")); err != nil {
		return nil, err
	}
	if ins.watched, err = meter.Int64UpDownCounter("solwatch.tracker.watched_addresses",
		metric.WithDescription("Running watch tasks")); err != nil {
		return nil, err
	}

	return &ins, nil
}
