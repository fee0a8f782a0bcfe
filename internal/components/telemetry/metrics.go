package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const report_metrics_gauge = "metrics.gauge"

var meter = otel.Meter("lectioassist")

// MetricsAPI forwards every report to an inner API and additionally records
// ReportCount values on an otel gauge, labelled by id.
type MetricsAPI struct {
	API
	gauge metric.Int64Gauge
}

func NewMetricsAPI(inner API) MetricsAPI {
	gauge, err := meter.Int64Gauge(
		"report_count",
		metric.WithDescription("point-in-time counts reported by components"),
	)
	if err != nil {
		inner.ReportBroken(report_metrics_gauge, err)
	}
	return MetricsAPI{API: inner, gauge: gauge}
}

func (m MetricsAPI) ReportCount(id string, count int64) {
	m.API.ReportCount(id, count)
	if m.gauge == nil {
		return
	}
	m.gauge.Record(
		context.Background(),
		count,
		metric.WithAttributes(attribute.String("id", id)),
	)
}
