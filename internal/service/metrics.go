package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the print pipeline counters. They are registered on the
// registry passed to NewMetrics, next to the HTTP middleware metrics.
type Metrics struct {
	jobsTotal  *prometheus.CounterVec
	pagesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the print pipeline metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		jobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "label_jobs_total",
				Help: "Total print jobs submitted to the printer backend.",
			},
			[]string{"kind"},
		),
		pagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "label_pages_total",
				Help: "Total label pages rendered across all jobs.",
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{m.jobsTotal, m.pagesTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeJob(kind string, pages int) {
	m.jobsTotal.WithLabelValues(kind).Inc()
	m.pagesTotal.WithLabelValues(kind).Add(float64(pages))
}
