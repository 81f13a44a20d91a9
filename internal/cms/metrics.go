package cms

import "github.com/prometheus/client_golang/prometheus"

const (
	sourceContentful = "contentful"
	sourceFallback   = "fallback"

	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Metrics counts content fetches and cache lookups.
type Metrics struct {
	Fetches *prometheus.CounterVec
	Cache   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pattivana",
			Subsystem: "cms",
			Name:      "fetch_total",
			Help:      "Content document fetches by source and result.",
		}, []string{"source", "result"}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pattivana",
			Subsystem: "cms",
			Name:      "cache_total",
			Help:      "Content cache lookups by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Fetches, m.Cache)
	}
	return m
}

func (m *Metrics) fetched(source, result string) {
	m.Fetches.WithLabelValues(source, result).Inc()
}

func (m *Metrics) cacheHit()  { m.Cache.WithLabelValues("hit").Inc() }
func (m *Metrics) cacheMiss() { m.Cache.WithLabelValues("miss").Inc() }
