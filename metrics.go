package pull

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	advances        prometheus.Counter
	elements        prometheus.Counter
	splits          prometheus.Counter
	advanceDuration prometheus.Histogram
}

// Instrument decorates a sequence with Prometheus metrics: a counter of
// advance calls, a counter of emitted elements, a counter of successful
// splits and a histogram of advance durations. Halves obtained by splitting
// an instrumented sequence report into the same metrics. Everything else is
// passed through untouched. It panics if source or config is nil.
func Instrument[E any](source Sequence[E], config *PrometheusConfig) Sequence[E] {
	requireSource(source)
	if config == nil {
		panic("config can't be nil")
	}
	return &instrumentedSeq[E]{source: source, metrics: config.metrics()}
}

type instrumentedSeq[E any] struct {
	source  Sequence[E]
	metrics *metrics
}

func (s *instrumentedSeq[E]) Advance(yield func(E)) bool {
	start := time.Now()
	ok := s.source.Advance(func(e E) {
		s.metrics.elements.Inc()
		yield(e)
	})
	s.metrics.advances.Inc()
	s.metrics.advanceDuration.Observe(time.Since(start).Seconds())
	return ok
}

func (s *instrumentedSeq[E]) Split() Sequence[E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	s.metrics.splits.Inc()
	return &instrumentedSeq[E]{source: half, metrics: s.metrics}
}

func (s *instrumentedSeq[E]) Size() int64 {
	return s.source.Size()
}

func (s *instrumentedSeq[E]) Props() Props {
	return s.source.Props()
}
