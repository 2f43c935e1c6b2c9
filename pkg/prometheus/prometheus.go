// Package prometheus provides a bindz.MetricsProvider backed by
// Prometheus client_golang collectors.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zoobzio/bindz"
)

// Provider records State commits as Prometheus metrics, labelled by the
// State's name:
//
//   - <namespace>_state_changes_total: commits per state
//   - <namespace>_state_observers: observers notified by the last commit
type Provider struct {
	changes   *prometheus.CounterVec
	observers *prometheus.GaugeVec
}

// config holds configuration options for a Provider.
type config struct {
	namespace   string
	subsystem   string
	constLabels prometheus.Labels
	registry    prometheus.Registerer
}

// Option configures a Provider.
type Option func(*config)

// WithNamespace sets the metrics namespace. Default: "bindz".
func WithNamespace(namespace string) Option {
	return func(c *config) {
		c.namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *config) {
		c.subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) {
		c.constLabels = labels
	}
}

// WithRegistry sets the registry collectors are registered with.
// Default: prometheus.DefaultRegisterer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// New creates a Provider and registers its collectors.
// It panics if the collectors are already registered with the same registry.
//
// Example:
//
//	metrics := prometheus.New(prometheus.WithRegistry(reg))
//	count := bindz.NewState(0).Name("count").Metrics(metrics)
func New(opts ...Option) *Provider {
	cfg := &config{
		namespace: "bindz",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factory := promauto.With(cfg.registry)

	return &Provider{
		changes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Subsystem:   cfg.subsystem,
			Name:        "state_changes_total",
			Help:        "Total number of values committed to a state",
			ConstLabels: cfg.constLabels,
		}, []string{"state"}),

		observers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.namespace,
			Subsystem:   cfg.subsystem,
			Name:        "state_observers",
			Help:        "Observers notified by the most recent commit",
			ConstLabels: cfg.constLabels,
		}, []string{"state"}),
	}
}

// OnChange implements bindz.MetricsProvider.
func (p *Provider) OnChange(name string, observers int) {
	p.changes.WithLabelValues(name).Inc()
	p.observers.WithLabelValues(name).Set(float64(observers))
}

// Ensure Provider implements bindz.MetricsProvider.
var _ bindz.MetricsProvider = (*Provider)(nil)
