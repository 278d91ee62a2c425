package healthendpoint

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPStatusCollector interface {
	prometheus.Collector
	IncConcurrentHTTPRequest()
	DecConcurrentHTTPRequest()
	ObserveHTTPResponse(method string, statusCode int)
}

type httpStatusCollector struct {
	concurrentHTTPRequestGauge prometheus.Gauge
	httpResponses              *prometheus.CounterVec
}

func NewHTTPStatusCollector(namespace, subSystem string) HTTPStatusCollector {
	return &httpStatusCollector{
		concurrentHTTPRequestGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "concurrent_http_request",
				Help:      "Number of concurrent http request",
			}),
		httpResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "http_responses_total",
				Help:      "Number of http responses by method and status code",
			}, []string{"method", "code"}),
	}
}

func (c *httpStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.concurrentHTTPRequestGauge.Desc()
	c.httpResponses.Describe(ch)
}

func (c *httpStatusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.concurrentHTTPRequestGauge
	c.httpResponses.Collect(ch)
}

func (c *httpStatusCollector) IncConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Inc()
}

func (c *httpStatusCollector) DecConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Dec()
}

func (c *httpStatusCollector) ObserveHTTPResponse(method string, statusCode int) {
	c.httpResponses.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}
