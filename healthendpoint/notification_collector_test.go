package healthendpoint_test

import (
	"strings"

	. "github.com/contactform/contactapi/healthendpoint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("NotificationCollector", func() {
	It("reports delivery outcomes and queue length", func() {
		collector := NewNotificationCollector("contactapi", "notification")
		collector.NotificationSent()
		collector.NotificationSent()
		collector.NotificationFailed()
		collector.NotificationDropped()
		collector.QueueLength(3)

		err := testutil.CollectAndCompare(collector, strings.NewReader(`
# HELP contactapi_notification_dropped_total Number of notifications discarded because the queue was full
# TYPE contactapi_notification_dropped_total counter
contactapi_notification_dropped_total 1
# HELP contactapi_notification_failed_total Number of notifications the mail transport rejected
# TYPE contactapi_notification_failed_total counter
contactapi_notification_failed_total 1
# HELP contactapi_notification_queue_length Number of notifications waiting for a worker
# TYPE contactapi_notification_queue_length gauge
contactapi_notification_queue_length 3
# HELP contactapi_notification_sent_total Number of notifications delivered to the mail transport
# TYPE contactapi_notification_sent_total counter
contactapi_notification_sent_total 2
`))
		Expect(err).NotTo(HaveOccurred())
	})
})
