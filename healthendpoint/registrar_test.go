package healthendpoint_test

import (
	"github.com/contactform/contactapi/healthendpoint"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
)

var _ = Describe("RegisterCollectors", func() {
	var (
		logger     *lagertest.TestLogger
		registry   *prometheus.Registry
		collectors []prometheus.Collector
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("registrar")
		registry = prometheus.NewRegistry()
		collectors = []prometheus.Collector{
			healthendpoint.NewAdmissionCollector("contactapi", "ratelimiter"),
			healthendpoint.NewNotificationCollector("contactapi", "notification"),
		}
	})

	It("adds the process and go collectors when asked", func() {
		healthendpoint.RegisterCollectors(registry, collectors, true, logger)

		families, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		var names []string
		for _, family := range families {
			names = append(names, family.GetName())
		}
		Expect(names).To(ContainElement("go_goroutines"))
		Expect(names).To(ContainElement("contactapi_notification_queue_length"))
	})

	It("registers only the given collectors otherwise", func() {
		healthendpoint.RegisterCollectors(registry, collectors, false, logger)

		families, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		for _, family := range families {
			Expect(family.GetName()).To(HavePrefix("contactapi_"))
		}
	})

	It("logs collectors that clash instead of failing", func() {
		healthendpoint.RegisterCollectors(registry, collectors, false, logger)
		healthendpoint.RegisterCollectors(registry, collectors[:1], false, logger)

		Expect(logger).To(Say("registrar.failed-to-register-collector"))
	})
})
