package pull

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by an
// instrumented sequence.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the advances counter.
	Advances prometheus.CounterOpts
	// Options for the emitted elements counter.
	Elements prometheus.CounterOpts
	// Options for the splits counter.
	Splits prometheus.CounterOpts
	// Options for the advance duration histogram.
	AdvanceDuration prometheus.HistogramOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "pull"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Advances: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "advances",
			Help:      "Number of advance calls on the sequence",
		},
		Elements: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements",
			Help:      "Number of elements emitted by the sequence",
		},
		Splits: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "splits",
			Help:      "Number of successful splits of the sequence",
		},
		AdvanceDuration: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "advance_duration_seconds",
			Help:      "Duration of a single advance",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 2, 12),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		advances:        prometheus.NewCounter(c.Advances),
		elements:        prometheus.NewCounter(c.Elements),
		splits:          prometheus.NewCounter(c.Splits),
		advanceDuration: prometheus.NewHistogram(c.AdvanceDuration),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.advances,
			m.elements,
			m.splits,
			m.advanceDuration,
		)
	}

	return &m
}
