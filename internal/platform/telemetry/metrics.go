package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const instrumentationName = "github.com/dankimjw/portfolio-api"

// Metric attribute keys.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrHTTPStatus     = attribute.Key("http.status_code")
	AttrPeerService    = attribute.Key("peer.service")
	AttrResult         = attribute.Key("result")
	AttrStoreOperation = attribute.Key("store.operation")
	AttrDocumentKind   = attribute.Key("document.kind")
	AttrEdgeKind       = attribute.Key("edge.kind")
	AttrTransition     = attribute.Key("edge.transition")
	AttrDrift          = attribute.Key("drift.type")
)

// Metrics is every instrument the service records into. Durations are in
// seconds.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	StoreOperationDuration metric.Float64Histogram
	StoreOperationTotal    metric.Int64Counter
	EdgeTransitionTotal    metric.Int64Counter
	ReconcileDriftTotal    metric.Int64Counter
}

type histogramSpec struct {
	dst         *metric.Float64Histogram
	name, about string
}

type counterSpec struct {
	dst               *metric.Int64Counter
	name, unit, about string
}

// NewMetrics creates the instruments on a meter named after the module and
// tagged with serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationName,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))

	m := &Metrics{}
	histograms := []histogramSpec{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing HTTP requests"},
		{&m.StoreOperationDuration, "store.operation.duration", "Duration of document store operations"},
	}
	counters := []counterSpec{
		{&m.ServerRequestTotal, "http.server.request.total", "{request}", "Incoming HTTP requests"},
		{&m.ClientRequestTotal, "http.client.request.total", "{request}", "Outgoing HTTP requests"},
		{&m.StoreOperationTotal, "store.operation.total", "{operation}", "Document store operations"},
		{&m.EdgeTransitionTotal, "relationship.edge.total", "{transition}", "Attach and detach attempts per edge kind and outcome"},
		{&m.ReconcileDriftTotal, "reconcile.drift.total", "{edge}", "Inconsistent edges found by reconciliation"},
	}

	var err error
	for _, h := range histograms {
		*h.dst, err = meter.Float64Histogram(h.name, metric.WithDescription(h.about), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.about), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
	}
	return m, nil
}
