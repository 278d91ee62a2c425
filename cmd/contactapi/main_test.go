package main

import (
	"context"
	"os"
	"time"

	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/ratelimiter"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
)

var _ = Describe("wiring", func() {
	var logger *lagertest.TestLogger

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("contactapi")
	})

	Describe("createRateLimitStore", func() {
		It("uses the cache backed store when asked", func() {
			Expect(createRateLimitStore(models.RateLimitConfig{Store: models.RateLimitStoreCache})).To(BeAssignableToTypeOf(&ratelimiter.CacheStore{}))
		})

		It("defaults to the in-memory store", func() {
			Expect(createRateLimitStore(models.RateLimitConfig{Store: models.RateLimitStoreMemory})).To(BeAssignableToTypeOf(&ratelimiter.InMemoryStore{}))
		})
	})

	Describe("createStatsStore", func() {
		It("returns no store when disabled", func() {
			sink := createStatsStore(models.RateLimitStatsConfig{}, logger)
			Expect(sink.store).To(BeNil())
			Expect(sink.runner).To(BeNil())
			Expect(sink.endpoints).To(BeEmpty())
			sink.close()
		})

		It("builds a capped memory store served on the health router", func() {
			sink := createStatsStore(models.RateLimitStatsConfig{Store: models.StatsStoreMemory, TrackKeys: true, MaxTrackedKeys: 1}, logger)
			Expect(sink.store).To(BeAssignableToTypeOf(&ratelimiter.MemoryStatsStore{}))
			Expect(sink.runner).To(BeNil())
			Expect(sink.endpoints).To(HaveLen(1))
			Expect(sink.endpoints[0].Path).To(Equal("/stats"))
			Expect(sink.endpoints[0].Handler).To(BeIdenticalTo(sink.store))

			memory := sink.store.(*ratelimiter.MemoryStatsStore)
			for _, key := range []string{"10.0.0.1", "10.0.0.2"} {
				Expect(memory.Record(context.Background(), ratelimiter.StatsEvent{Method: "POST", Path: "/api/contact", Key: key, Allowed: true})).To(Succeed())
			}
			Expect(memory.Snapshot().Keys).To(HaveKey(ratelimiter.OverflowKey))
		})

		It("writes admissions to redis in the background under the default prefix", func() {
			server := miniredis.RunT(GinkgoT())

			sink := createStatsStore(models.RateLimitStatsConfig{Store: models.StatsStoreRedis, RedisAddr: server.Addr()}, logger)
			defer sink.close()
			Expect(sink.store).To(BeAssignableToTypeOf(&ratelimiter.AsyncStatsStore{}))
			Expect(sink.runner).To(BeIdenticalTo(sink.store))

			process := ifrit.Invoke(sink.runner)
			defer func() {
				process.Signal(os.Interrupt)
				Eventually(process.Wait()).Should(Receive())
			}()

			Expect(sink.store.Record(context.Background(), ratelimiter.StatsEvent{
				Method:  "POST",
				Path:    "/api/contact",
				Key:     "10.0.0.1",
				Allowed: false,
				At:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			})).To(Succeed())

			totalKey := ratelimiter.NewRedisStatsStore(nil, "", 0, false).TotalKey()
			Expect(totalKey).To(HavePrefix(ratelimiter.DefaultStatsPrefix))
			Eventually(func() string { return server.HGet(totalKey, "denied") }).Should(Equal("1"))
			Expect(logger.Buffer()).NotTo(gbytes.Say("redis-stats-store-unreachable"))
		})
	})
})
