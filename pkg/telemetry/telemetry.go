// Package telemetry exports record counts and status transitions as
// Prometheus metrics. Counts are recomputed from the store on every
// scrape; nothing is cached between scrapes.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "agro"

// Recorder receives status transitions applied by the services.
type Recorder interface {
	Transition(entity, from, to string)
}

// Nop discards every transition.
type Nop struct{}

func (Nop) Transition(string, string, string) {}

// CountSource reports the current number of records per status.
type CountSource func() (map[string]int, error)

type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	collector   *recordCollector
}

func New(logger *zap.Logger) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Status changes applied to records.",
		}, []string{"entity", "from", "to"}),
		collector: &recordCollector{
			logger:  logger,
			sources: map[string]CountSource{},
			desc: prometheus.NewDesc(
				prometheus.BuildFQName(namespace, "", "records"),
				"Records per entity and status.",
				[]string{"entity", "status"}, nil,
			),
		},
	}
	reg.MustRegister(m.transitions, m.collector)
	return m
}

func (m *Metrics) Transition(entity, from, to string) {
	m.transitions.WithLabelValues(entity, from, to).Inc()
}

// Source adds the status counts of one entity to the records gauge. It
// must be called before the handler serves its first scrape.
func (m *Metrics) Source(entity string, src CountSource) {
	m.collector.sources[entity] = src
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type recordCollector struct {
	logger  *zap.Logger
	desc    *prometheus.Desc
	sources map[string]CountSource
}

func (c *recordCollector) Describe(ch chan<- *prometheus.Desc) { ch <- c.desc }

func (c *recordCollector) Collect(ch chan<- prometheus.Metric) {
	for entity, src := range c.sources {
		counts, err := src()
		if err != nil {
			c.logger.Warn("collect records", zap.String("entity", entity), zap.Error(err))
			continue
		}
		for st, n := range counts {
			ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), entity, st)
		}
	}
}
