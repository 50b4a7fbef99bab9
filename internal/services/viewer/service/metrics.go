package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the viewer counters exported on /metrics
type Metrics struct {
	Rebuilds  prometheus.Counter
	Reapplies prometheus.Counter
	Comments  prometheus.Counter
	Conflicts prometheus.Counter
	Stale     prometheus.Gauge
	Threads   prometheus.Gauge
}

// NewMetrics creates the counters and registers them on reg (nil skips registration)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sarifview",
			Name:      "aggregate_rebuilds_total",
			Help:      "Aggregate batches built from a new log collection or revision.",
		}),
		Reapplies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sarifview",
			Name:      "reapplies_total",
			Help:      "Explicit filter reapply actions.",
		}),
		Comments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sarifview",
			Name:      "comments_posted_total",
			Help:      "Comments appended to discussion threads.",
		}),
		Conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sarifview",
			Name:      "discussion_conflicts_total",
			Help:      "Thread creations rejected because the signature already exists.",
		}),
		Stale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sarifview",
			Name:      "stale",
			Help:      "1 while the view may not reflect the latest review state.",
		}),
		Threads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sarifview",
			Name:      "discussion_threads",
			Help:      "Number of discussion threads.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Rebuilds, m.Reapplies, m.Comments, m.Conflicts, m.Stale, m.Threads)
	}
	return m
}
