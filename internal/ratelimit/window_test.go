package ratelimit_test

import (
	"sync"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/PaulBabatuyi/portfolio/internal/ratelimit"
)

var _ = Describe("Window", func() {
	var (
		fclock *fakeclock.FakeClock
		window *Window
	)

	BeforeEach(func() {
		fclock = fakeclock.NewFakeClock(time.Unix(1700000000, 0))
		window = NewWindow("test", time.Minute, fclock, lagertest.NewTestLogger("window"))
	})

	Describe("Check", func() {
		It("accepts up to the limit and rejects the next request", func() {
			for i := 0; i < 2; i++ {
				Expect(window.Check("k", 2).Allowed).To(BeTrue())
			}
			res := window.Check("k", 2)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(60))
		})

		It("does not record rejected requests", func() {
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
			fclock.Increment(30 * time.Second)
			Expect(window.Check("k", 1).Allowed).To(BeFalse())
			Expect(window.Check("k", 1).Allowed).To(BeFalse())

			fclock.Increment(30 * time.Second)
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
		})

		It("treats a timestamp exactly one window old as expired", func() {
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
			fclock.Increment(time.Minute - time.Millisecond)
			Expect(window.Check("k", 1).Allowed).To(BeFalse())
			fclock.Increment(time.Millisecond)
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
		})

		It("rounds the retry hint up to whole seconds", func() {
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
			fclock.Increment(58*time.Second + 500*time.Millisecond)

			res := window.Check("k", 1)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(2))
		})

		It("never reports a retry hint below one second", func() {
			Expect(window.Check("k", 1).Allowed).To(BeTrue())
			fclock.Increment(time.Minute - time.Millisecond)

			res := window.Check("k", 1)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(1))
		})

		It("computes the retry hint from the oldest timestamp in the window", func() {
			Expect(window.Check("k", 3).Allowed).To(BeTrue())
			fclock.Increment(10 * time.Second)
			Expect(window.Check("k", 3).Allowed).To(BeTrue())
			fclock.Increment(10 * time.Second)
			Expect(window.Check("k", 3).Allowed).To(BeTrue())
			fclock.Increment(5 * time.Second)

			res := window.Check("k", 3)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(35))
		})

		It("rejects everything when the limit is not positive", func() {
			res := window.Check("k", 0)
			Expect(res.Allowed).To(BeFalse())
			Expect(res.RetryAfterSeconds).To(Equal(60))
			Expect(window.Len()).To(Equal(0))
		})

		It("never accepts more than the limit under concurrent callers", func() {
			var (
				wg       sync.WaitGroup
				accepted int64
			)
			for i := 0; i < 64; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					if window.Check("shared", 3).Allowed {
						atomic.AddInt64(&accepted, 1)
					}
				}()
			}
			wg.Wait()
			Expect(atomic.LoadInt64(&accepted)).To(Equal(int64(3)))
		})
	})

	Describe("pruning", func() {
		It("drops a key once all of its timestamps have expired", func() {
			Expect(window.Check("a", 5).Allowed).To(BeTrue())
			Expect(window.Check("b", 5).Allowed).To(BeTrue())
			Expect(window.Len()).To(Equal(2))

			fclock.Increment(2 * time.Minute)
			Expect(window.Check("a", 5).Allowed).To(BeTrue())
			Expect(window.Len()).To(Equal(2))

			Expect(window.Sweep()).To(Equal(1))
			Expect(window.Len()).To(Equal(1))
		})

		It("keeps keys that still have recent timestamps on sweep", func() {
			Expect(window.Check("a", 5).Allowed).To(BeTrue())
			fclock.Increment(45 * time.Second)
			Expect(window.Check("a", 5).Allowed).To(BeTrue())
			fclock.Increment(30 * time.Second)

			Expect(window.Sweep()).To(Equal(0))
			Expect(window.Len()).To(Equal(1))
		})
	})
})
