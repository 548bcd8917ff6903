package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "moon").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the Prometheus recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "moon",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder counts reconciliation mutations as Prometheus metrics. It
// implements reconcile.Recorder.
type Recorder struct {
	nodesCreated    prometheus.Counter
	nodesRemoved    prometheus.Counter
	nodesReplaced   prometheus.Counter
	textUpdates     prometheus.Counter
	attrsSet        prometheus.Counter
	attrsRemoved    prometheus.Counter
	subtreesSkipped prometheus.Counter
}

// NewRecorder creates a Prometheus-backed recorder and registers its
// counters with the configured registry.
//
// Expose the registry's handler to scrape them:
//
//	http.Handle("/metrics", promhttp.Handler())
func NewRecorder(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Recorder{
		nodesCreated:    counter("nodes_created_total", "Total live nodes materialized and appended"),
		nodesRemoved:    counter("nodes_removed_total", "Total live nodes removed"),
		nodesReplaced:   counter("nodes_replaced_total", "Total live nodes replaced"),
		textUpdates:     counter("text_updates_total", "Total in-place text content updates"),
		attrsSet:        counter("attrs_set_total", "Total attributes set or updated"),
		attrsRemoved:    counter("attrs_removed_total", "Total attributes removed"),
		subtreesSkipped: counter("subtrees_skipped_total", "Total subtrees skipped by their render gate"),
	}
}

// NodeCreated implements reconcile.Recorder.
func (r *Recorder) NodeCreated() { r.nodesCreated.Inc() }

// NodeRemoved implements reconcile.Recorder.
func (r *Recorder) NodeRemoved() { r.nodesRemoved.Inc() }

// NodeReplaced implements reconcile.Recorder.
func (r *Recorder) NodeReplaced() { r.nodesReplaced.Inc() }

// TextUpdated implements reconcile.Recorder.
func (r *Recorder) TextUpdated() { r.textUpdates.Inc() }

// AttrSet implements reconcile.Recorder.
func (r *Recorder) AttrSet() { r.attrsSet.Inc() }

// AttrRemoved implements reconcile.Recorder.
func (r *Recorder) AttrRemoved() { r.attrsRemoved.Inc() }

// SubtreeSkipped implements reconcile.Recorder.
func (r *Recorder) SubtreeSkipped() { r.subtreesSkipped.Inc() }
