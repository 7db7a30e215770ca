package ratelimit_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/PaulBabatuyi/portfolio/internal/ratelimit"
)

var _ = Describe("Limiter", func() {
	var (
		fclock  *fakeclock.FakeClock
		limiter *Limiter
	)

	BeforeEach(func() {
		fclock = fakeclock.NewFakeClock(time.Unix(1700000000, 0))
		limiter = NewLimiter(fclock, lagertest.NewTestLogger("limiter"))
	})

	AfterEach(func() {
		limiter.Stop()
	})

	Describe("CheckRateLimit", func() {
		const key = "messages:203.0.113.5"

		It("allows three requests per window and rejects the fourth", func() {
			for i := 0; i < ShortWindowMax; i++ {
				Expect(limiter.CheckRateLimit(key)).To(Equal(Result{Allowed: true}))
				fclock.Increment(time.Minute)
			}
			res := limiter.CheckRateLimit(key)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(BeNumerically(">=", 1))
			// oldest accepted at t0, now t0+3m
			Expect(res.RetryAfterSeconds).To(Equal(12 * 60))
		})

		It("slides the window once the oldest request is fifteen minutes old", func() {
			for i := 0; i < ShortWindowMax; i++ {
				Expect(limiter.CheckRateLimit(key).Allowed).To(BeTrue())
				fclock.Increment(time.Minute)
			}
			Expect(limiter.CheckRateLimit(key).Allowed).To(BeFalse())

			fclock.Increment(ShortWindowDuration - 3*time.Minute)
			Expect(limiter.CheckRateLimit(key).Allowed).To(BeTrue())
			Expect(limiter.CheckRateLimit(key).Allowed).To(BeFalse())
		})

		It("counts each identifier separately", func() {
			for i := 0; i < ShortWindowMax; i++ {
				Expect(limiter.CheckRateLimit("messages:1.1.1.1").Allowed).To(BeTrue())
			}
			Expect(limiter.CheckRateLimit("messages:1.1.1.1").Allowed).To(BeFalse())
			Expect(limiter.CheckRateLimit("messages:2.2.2.2").Allowed).To(BeTrue())
		})
	})

	Describe("CheckDailyRateLimit", func() {
		It("allows DefaultMaxPerDay requests and rejects the next one", func() {
			for i := 0; i < DefaultMaxPerDay; i++ {
				Expect(limiter.CheckDailyRateLimit("x", DefaultMaxPerDay).Allowed).To(BeTrue())
			}
			res := limiter.CheckDailyRateLimit("x", DefaultMaxPerDay)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(24 * 60 * 60))
		})

		It("falls back to DefaultMaxPerDay for a non-positive limit", func() {
			for i := 0; i < DefaultMaxPerDay; i++ {
				Expect(limiter.CheckDailyRateLimit("x", 0).Allowed).To(BeTrue())
			}
			Expect(limiter.CheckDailyRateLimit("x", 0).Allowed).To(BeFalse())
		})

		It("honours a caller supplied limit", func() {
			Expect(limiter.CheckDailyRateLimit("x", 1).Allowed).To(BeTrue())
			Expect(limiter.CheckDailyRateLimit("x", 1).Allowed).To(BeFalse())

			fclock.Increment(DailyWindowDuration)
			Expect(limiter.CheckDailyRateLimit("x", 1).Allowed).To(BeTrue())
		})

		It("is isolated from the short-window store", func() {
			const key = "testimonials:1.1.1.1"
			for i := 0; i < ShortWindowMax; i++ {
				Expect(limiter.CheckRateLimit(key).Allowed).To(BeTrue())
			}
			Expect(limiter.CheckRateLimit(key).Allowed).To(BeFalse())

			Expect(limiter.CheckDailyRateLimit(key, DefaultMaxPerDay).Allowed).To(BeTrue())
			Expect(limiter.Short().Len()).To(Equal(1))
			Expect(limiter.Daily().Len()).To(Equal(1))
		})
	})

	Describe("StartSweeper", func() {
		It("removes stale keys from both stores in the background", func() {
			Expect(limiter.CheckRateLimit("a").Allowed).To(BeTrue())
			Expect(limiter.CheckDailyRateLimit("b", 1).Allowed).To(BeTrue())

			limiter.StartSweeper(time.Hour)
			fclock.WaitForWatcherAndIncrement(25 * time.Hour)

			Eventually(limiter.Short().Len).Should(Equal(0))
			Eventually(limiter.Daily().Len).Should(Equal(0))
		})

		It("does nothing for a zero interval", func() {
			limiter.StartSweeper(0)
			Expect(fclock.WatcherCount()).To(Equal(0))
		})
	})
})
