package healthendpoint_test

import (
	"context"
	"net/http"
	"time"

	"github.com/contactform/contactapi/healthendpoint"
	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/ratelimiter"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/steinfletcher/apitest"
)

var _ = Describe("Extra health endpoints", func() {
	var (
		t      GinkgoTInterface
		router *mux.Router
		stats  *ratelimiter.MemoryStatsStore
	)

	BeforeEach(func() {
		t = GinkgoT()
		stats = ratelimiter.NewMemoryStatsStore(false)
		Expect(stats.Record(context.Background(), ratelimiter.StatsEvent{Allowed: false, Method: "POST", Path: "/api/contact"})).To(Succeed())

		conf := helpers.HealthConfig{ReadinessCheckEnabled: true}
		conf.BasicAuth.Username = "ops"
		conf.BasicAuth.Password = "secret"

		var err error
		router, err = healthendpoint.NewHealthRouter(conf, nil, lagertest.NewTestLogger("health"), prometheus.NewRegistry(),
			fakeclock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
			healthendpoint.Endpoint{Path: "/stats", Handler: stats})
		Expect(err).NotTo(HaveOccurred())
	})

	It("requires basic auth", func() {
		apitest.New().
			Handler(router).
			Get("/stats").
			Expect(t).
			Status(http.StatusUnauthorized).
			End()
	})

	It("serves the admission counters", func() {
		apitest.New().
			Handler(router).
			Get("/stats").
			BasicAuth("ops", "secret").
			Expect(t).
			Status(http.StatusOK).
			Body(`{"total":{"allowed":0,"denied":1},"routes":{"POST /api/contact":{"allowed":0,"denied":1}}}`).
			End()
	})
})
