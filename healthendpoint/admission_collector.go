package healthendpoint

import (
	"context"

	"github.com/contactform/contactapi/ratelimiter"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	admissionAllowed = "allowed"
	admissionDenied  = "denied"
)

// AdmissionCollector counts rate limiter decisions per route. It is a
// ratelimiter.StatsStore so the middleware can feed it directly.
type AdmissionCollector struct {
	admissions *prometheus.CounterVec
}

var _ ratelimiter.StatsStore = &AdmissionCollector{}
var _ prometheus.Collector = &AdmissionCollector{}

func NewAdmissionCollector(namespace, subSystem string) *AdmissionCollector {
	return &AdmissionCollector{
		admissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "admissions_total",
				Help:      "Number of rate limiter decisions by route and result",
			}, []string{"method", "path", "result"}),
	}
}

func (c *AdmissionCollector) Record(_ context.Context, ev ratelimiter.StatsEvent) error {
	result := admissionDenied
	if ev.Allowed {
		result = admissionAllowed
	}
	c.admissions.WithLabelValues(ev.Method, ev.Path, result).Inc()
	return nil
}

func (c *AdmissionCollector) Describe(ch chan<- *prometheus.Desc) {
	c.admissions.Describe(ch)
}

func (c *AdmissionCollector) Collect(ch chan<- prometheus.Metric) {
	c.admissions.Collect(ch)
}
