package ratelimiter_test

import (
	"os"
	"time"

	. "github.com/contactform/contactapi/ratelimiter"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
)

var _ = Describe("Sweeper", func() {
	const interval = time.Hour

	var (
		store     *InMemoryStore
		fakeClock *fakeclock.FakeClock
		logger    *lagertest.TestLogger
		process   ifrit.Process
	)

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
		store = NewStore()
		logger = lagertest.NewTestLogger("sweeper")
	})

	JustBeforeEach(func() {
		process = ifrit.Invoke(NewSweeper(store, interval, fakeClock, logger))
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive())
	})

	It("removes expired records on every tick", func() {
		now := fakeClock.Now()
		store.Set("expired", Record{Count: 5, ResetTime: now.Add(15 * time.Minute)})
		store.Set("active", Record{Count: 1, ResetTime: now.Add(2 * time.Hour)})

		fakeClock.WaitForWatcherAndIncrement(interval)

		Eventually(store.Len).Should(Equal(1))
		_, ok := store.Get("active")
		Expect(ok).To(BeTrue())
		Eventually(logger.Buffer()).Should(gbytes.Say(`removed-expired-records.*"remaining":1`))
	})

	It("does nothing before the first tick", func() {
		store.Set("expired", Record{Count: 5, ResetTime: fakeClock.Now().Add(-time.Minute)})
		Consistently(store.Len).Should(Equal(1))
	})

	It("logs when it stops", func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
		Expect(logger.Buffer()).To(gbytes.Say("stopped"))
	})
})
