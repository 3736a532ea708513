package prometheus

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/abczzz13/routetable"
)

// PrometheusMetrics is a Prometheus-backed implementation of
// routetable.Metrics.
type PrometheusMetrics struct {
	insertsTotal *prom.CounterVec
	lookupsTotal *prom.CounterVec
	rangeEvents  *prom.CounterVec
}

// WithMetrics returns a routetable option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() routetable.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns a routetable option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) routetable.Option {
	return withMetricsFactory(func() (*PrometheusMetrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a PrometheusMetrics constructor into a
// routetable.Option.
func withMetricsFactory(factory func() (*PrometheusMetrics, error)) routetable.Option {
	return routetable.WithMetricsFactory(func() (routetable.Metrics, error) {
		return factory()
	})
}

// New creates PrometheusMetrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*PrometheusMetrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates PrometheusMetrics and registers its collectors on
// the given registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	insertsTotalCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "route_table_inserts_total",
			Help: "Total number of route insert attempts by result (added, replaced, rejected).",
		},
		[]string{"result"},
	)
	lookupsTotalCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "route_table_lookups_total",
			Help: "Total number of route lookups by result (hit, miss, invalid).",
		},
		[]string{"result"},
	)
	rangeEventsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "route_table_range_events_total",
			Help: "Range-reduction events observed during inserts, labeled by event.",
		},
		[]string{"event"},
	)

	insertsTotal, err := registerCounterVec(registerer, insertsTotalCollector, "route_table_inserts_total")
	if err != nil {
		return nil, err
	}

	lookupsTotal, err := registerCounterVec(registerer, lookupsTotalCollector, "route_table_lookups_total")
	if err != nil {
		return nil, err
	}

	rangeEvents, err := registerCounterVec(registerer, rangeEventsCollector, "route_table_range_events_total")
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		insertsTotal: insertsTotal,
		lookupsTotal: lookupsTotal,
		rangeEvents:  rangeEvents,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordInsert increments route_table_inserts_total for the provided result
// label.
func (m *PrometheusMetrics) RecordInsert(result string) {
	m.insertsTotal.WithLabelValues(result).Inc()
}

// RecordLookup increments route_table_lookups_total for the provided result
// label.
func (m *PrometheusMetrics) RecordLookup(result string) {
	m.lookupsTotal.WithLabelValues(result).Inc()
}

// RecordRangeEvent increments route_table_range_events_total for the
// provided event label.
func (m *PrometheusMetrics) RecordRangeEvent(event string) {
	m.rangeEvents.WithLabelValues(event).Inc()
}
