// Package metrics provides a Registry of named counters and gauges, each
// keyed by an arbitrary-arity tuple of label values and exposed through a
// pull surface for Prometheus scraping. Each call to New builds an
// independent Registry. A separate Pusher exports its own OpenTelemetry
// instruments to Google Cloud Monitoring; the Registry's metrics are not
// pushed.
package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a set of named counter and gauge vectors. Instances are
// safe for concurrent use.
type Registry struct {
	reg *prometheus.Registry

	mu       sync.Mutex
	counters map[string]*prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{
		reg:      prometheus.NewRegistry(),
		counters: make(map[string]*prometheus.CounterVec),
		gauges:   make(map[string]*prometheus.GaugeVec),
	}
}

// Counter returns the named counter vector, creating it with the given
// label names on first use. Subsequent calls for the same name return
// the existing vector; the label names passed are not compared with the
// ones it was created with, so a differing label count only surfaces
// when label values are applied (as in IncCounter).
func (r *Registry) Counter(name, help string, labelNames ...string) (*prometheus.CounterVec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.counters[name]; ok {
		return c, nil
	}
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labelNames)
	if err := r.reg.Register(c); err != nil {
		return nil, fmt.Errorf("metrics: registering counter %q: %w", name, err)
	}
	r.counters[name] = c
	return c, nil
}

// Gauge returns the named gauge vector, creating it with the given label
// names on first use.
func (r *Registry) Gauge(name, help string, labelNames ...string) (*prometheus.GaugeVec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.gauges[name]; ok {
		return g, nil
	}
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, labelNames)
	if err := r.reg.Register(g); err != nil {
		return nil, fmt.Errorf("metrics: registering gauge %q: %w", name, err)
	}
	r.gauges[name] = g
	return g, nil
}

// IncCounter increments the named counter for the given label values,
// creating the counter with those label names if it does not exist yet.
func (r *Registry) IncCounter(name, help string, labelNames []string, labelValues ...string) error {
	c, err := r.Counter(name, help, labelNames...)
	if err != nil {
		return err
	}
	collector, err := c.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		return fmt.Errorf("metrics: %q: %w", name, err)
	}
	collector.Inc()
	return nil
}

// SetGauge sets the named gauge for the given label values to v, creating
// the gauge with those label names if it does not exist yet.
func (r *Registry) SetGauge(name, help string, v float64, labelNames []string, labelValues ...string) error {
	g, err := r.Gauge(name, help, labelNames...)
	if err != nil {
		return err
	}
	collector, err := g.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		return fmt.Errorf("metrics: %q: %w", name, err)
	}
	collector.Set(v)
	return nil
}

// Handler returns the http.Handler that serves this registry's pull
// surface, suitable for mounting at /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
