package mailer_test

import (
	"context"
	"fmt"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/healthdesk/registry/mailer"
)

var _ = Describe("InlineDispatcher", func() {
	var dispatcher mailer.Dispatcher

	BeforeEach(func() {
		dispatcher = mailer.NewInlineDispatcher(zap.NewNop().Sugar())
	})

	It("runs the job before returning", func() {
		ran := false
		dispatcher.Submit(func(ctx context.Context) error {
			ran = true
			return nil
		})
		Expect(ran).To(BeTrue())
	})

	It("swallows job errors", func() {
		dispatcher.Submit(func(ctx context.Context) error {
			return fmt.Errorf("smtp unavailable")
		})
	})
})

var _ = Describe("QueuedDispatcher", func() {
	var dispatcher *mailer.QueuedDispatcher

	BeforeEach(func() {
		dispatcher = mailer.NewQueuedDispatcher(8, zap.NewNop().Sugar())
		dispatcher.Start()
	})

	AfterEach(func() {
		_ = dispatcher.Stop(context.Background())
	})

	It("runs submitted jobs asynchronously", func() {
		var count atomic.Int32
		for i := 0; i < 5; i++ {
			dispatcher.Submit(func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}

		Eventually(func() int32 { return count.Load() }).Should(Equal(int32(5)))
	})

	It("keeps running after a job fails", func() {
		var succeeded atomic.Bool
		dispatcher.Submit(func(ctx context.Context) error {
			return fmt.Errorf("smtp unavailable")
		})
		dispatcher.Submit(func(ctx context.Context) error {
			succeeded.Store(true)
			return nil
		})

		Eventually(func() bool { return succeeded.Load() }).Should(BeTrue())
	})

	It("drains pending jobs on stop", func() {
		var count atomic.Int32
		for i := 0; i < 8; i++ {
			dispatcher.Submit(func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}

		Expect(dispatcher.Stop(context.Background())).To(Succeed())
		Expect(count.Load()).To(Equal(int32(8)))

		// AfterEach would double close the queue
		dispatcher = mailer.NewQueuedDispatcher(1, zap.NewNop().Sugar())
		dispatcher.Start()
	})

	It("drops jobs when the queue is saturated", func() {
		blocked := make(chan struct{})
		saturated := mailer.NewQueuedDispatcher(1, zap.NewNop().Sugar())
		saturated.Start()
		defer func() {
			close(blocked)
			_ = saturated.Stop(context.Background())
		}()

		var count atomic.Int32
		saturated.Submit(func(ctx context.Context) error {
			<-blocked
			return nil
		})
		// One job fits the buffer, the rest must be dropped without blocking
		for i := 0; i < 10; i++ {
			saturated.Submit(func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}

		Expect(int(count.Load())).To(BeZero())
	})
})
