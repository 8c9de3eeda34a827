package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
)

var _ = Describe("Controller", func() {
	var (
		logs *bytes.Buffer
		ctrl *session.Controller
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctrl = session.New(
			session.WithLogger(logger),
			session.WithSeed(42),
			session.WithPacing(player.Instant()),
		)
		ctrl.Add("sorting-graph", 10, algo.BubbleSort)
	})

	Describe("Randomize", func() {
		It("produces exactly the configured number of bars within [1,100]", func() {
			Expect(ctrl.Randomize("sorting-graph")).To(Succeed())

			ct, err := ctrl.Container("sorting-graph")
			Expect(err).NotTo(HaveOccurred())
			Expect(ct.Bars().Len()).To(Equal(10))
			for _, v := range ct.Bars().Values() {
				Expect(v).To(BeNumerically(">=", 1))
				Expect(v).To(BeNumerically("<=", 100))
			}
		})

		It("logs an error and aborts for an unknown container", func() {
			err := ctrl.Randomize("missing")
			Expect(err).To(MatchError(session.ErrContainerNotFound))
			Expect(logs.String()).To(ContainSubstring("level=ERROR"))
		})

		It("rejects a bar count above the limit", func() {
			ctrl.Add("huge", bars.MaxChildren+1, algo.BubbleSort)
			Expect(ctrl.Randomize("huge")).To(MatchError(bars.ErrInvalidCount))
			Expect(logs.String()).To(ContainSubstring("invalid bar count"))
			Expect(ctrl.Busy("huge")).To(BeFalse())
		})

		It("refuses to randomize a busy container", func() {
			Expect(ctrl.Randomize("sorting-graph")).To(Succeed())
			run, err := ctrl.Begin("sorting-graph", "")
			Expect(err).NotTo(HaveOccurred())
			before := run.Container.Bars().Values()

			Expect(ctrl.Randomize("sorting-graph")).To(MatchError(session.ErrBusy))
			Expect(run.Container.Bars().Values()).To(Equal(before))
			Expect(logs.String()).To(ContainSubstring("currently being sorted"))

			run.Release()
			Expect(ctrl.Randomize("sorting-graph")).To(Succeed())
		})
	})

	Describe("Start", func() {
		for _, name := range algo.Names() {
			It("sorts the container with "+name, func() {
				Expect(ctrl.Randomize("sorting-graph")).To(Succeed())

				result, err := ctrl.Start(context.Background(), "sorting-graph", name)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Metrics).To(HaveKey("swaps"))

				ct, _ := ctrl.Container("sorting-graph")
				Expect(ct.Bars().Sorted()).To(BeTrue())
				Expect(ct.Busy()).To(BeFalse())
			})
		}

		It("uses the container's sort type when none is given", func() {
			Expect(ctrl.Load("sorting-graph", []int{5, 3, 1, 4})).To(Succeed())
			run, err := ctrl.Begin("sorting-graph", "")
			Expect(err).NotTo(HaveOccurred())
			defer run.Release()
			Expect(run.SortType).To(Equal(algo.BubbleSort))
		})

		It("performs no action and warns while busy", func() {
			Expect(ctrl.Load("sorting-graph", []int{5, 3, 1, 4})).To(Succeed())
			run, err := ctrl.Begin("sorting-graph", algo.QuickSort)
			Expect(err).NotTo(HaveOccurred())
			defer run.Release()

			_, err = ctrl.Start(context.Background(), "sorting-graph", algo.BubbleSort)
			Expect(err).To(MatchError(session.ErrBusy))
			Expect(logs.String()).To(ContainSubstring("level=WARN"))
			Expect(run.Container.Bars().Values()).To(Equal([]int{5, 3, 1, 4}))
		})

		It("reports an unknown sort type without taking the container", func() {
			_, err := ctrl.Start(context.Background(), "sorting-graph", "merge-sort")
			Expect(err).To(MatchError(session.ErrUnknownSortType))
			Expect(ctrl.Busy("sorting-graph")).To(BeFalse())
		})

		It("reports a missing container", func() {
			_, err := ctrl.Start(context.Background(), "nope", algo.BubbleSort)
			Expect(err).To(MatchError(session.ErrContainerNotFound))
		})

		It("lets exactly one concurrent start win", func() {
			Expect(ctrl.Randomize("sorting-graph")).To(Succeed())

			var (
				wg   sync.WaitGroup
				mu   sync.Mutex
				runs []*session.Run
			)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					run, err := ctrl.Begin("sorting-graph", algo.QuickSort)
					if err == nil {
						mu.Lock()
						runs = append(runs, run)
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			Expect(runs).To(HaveLen(1))
			runs[0].Release()
			Expect(ctrl.Busy("sorting-graph")).To(BeFalse())
		})
	})

	Describe("Stop", func() {
		It("never interrupts a running sort", func() {
			Expect(ctrl.Load("sorting-graph", []int{2, 1})).To(Succeed())
			run, err := ctrl.Begin("sorting-graph", algo.BubbleSort)
			Expect(err).NotTo(HaveOccurred())

			Expect(ctrl.Stop("sorting-graph")).To(MatchError(session.ErrStopUnsupported))
			Expect(ctrl.Busy("sorting-graph")).To(BeTrue())

			_, err = run.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			run.Release()
			Expect(run.Container.Bars().Values()).To(Equal([]int{1, 2}))
		})
	})

	It("lists container ids", func() {
		ctrl.Add("another", 5, algo.QuickSort)
		Expect(ctrl.IDs()).To(Equal([]string{"another", "sorting-graph"}))
	})
})
