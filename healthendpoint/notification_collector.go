package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

type NotificationCollector struct {
	sent    prometheus.Counter
	failed  prometheus.Counter
	dropped prometheus.Counter
	queued  prometheus.Gauge
}

func NewNotificationCollector(namespace, subSystem string) *NotificationCollector {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: subSystem, Name: name, Help: help})
	}
	return &NotificationCollector{
		sent:    counter("sent_total", "Number of notifications delivered to the mail transport"),
		failed:  counter("failed_total", "Number of notifications the mail transport rejected"),
		dropped: counter("dropped_total", "Number of notifications discarded because the queue was full"),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "queue_length",
			Help:      "Number of notifications waiting for a worker",
		}),
	}
}

func (c *NotificationCollector) NotificationSent()      { c.sent.Inc() }
func (c *NotificationCollector) NotificationFailed()    { c.failed.Inc() }
func (c *NotificationCollector) NotificationDropped()   { c.dropped.Inc() }
func (c *NotificationCollector) QueueLength(length int) { c.queued.Set(float64(length)) }

func (c *NotificationCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.sent.Desc()
	ch <- c.failed.Desc()
	ch <- c.dropped.Desc()
	ch <- c.queued.Desc()
}

func (c *NotificationCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.sent
	ch <- c.failed
	ch <- c.dropped
	ch <- c.queued
}
