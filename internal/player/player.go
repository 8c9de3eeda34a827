package player

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bars"
)

type Metric interface {
	Name() string
	Observe(s algo.Step)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s algo.Step, c *bars.Collection)
}

type Result struct {
	Steps   int
	Metrics map[string]float64
	Elapsed time.Duration
}

// Player replays a step sequence onto a collection.
type Player struct {
	bars      *bars.Collection
	pacing    Pacing
	next      func() (algo.Step, bool)
	stop      func()
	steps     int
	done      bool
	metrics   []Metric
	observers []Observer
	sleep     func(ctx context.Context, d time.Duration) error
}

func New(c *bars.Collection, steps iter.Seq[algo.Step], pacing Pacing) *Player {
	next, stop := iter.Pull(steps)
	return &Player{
		bars:      c,
		pacing:    pacing,
		next:      next,
		stop:      stop,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		sleep:     sleepContext,
	}
}

func (p *Player) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }

func (p *Player) SetPacing(pacing Pacing) { p.pacing = pacing }
func (p *Player) Pacing() Pacing          { return p.pacing }
func (p *Player) Bars() *bars.Collection  { return p.bars }
func (p *Player) StepsTaken() int         { return p.steps }

// Step pulls and applies the next step. It returns the delay to wait before
// the collection may be read again, and ErrFinished once the sequence is
// exhausted.
func (p *Player) Step() (algo.Step, time.Duration, error) {
	if p.done {
		return algo.Step{}, 0, ErrFinished
	}
	s, ok := p.next()
	if !ok {
		p.finish()
		return algo.Step{}, 0, ErrFinished
	}
	if err := p.apply(s); err != nil {
		p.finish()
		return s, 0, err
	}
	p.steps++
	for _, m := range p.metrics {
		m.Observe(s)
	}
	for _, obs := range p.observers {
		obs.OnStep(s, p.bars)
	}
	return s, p.pacing.DelayFor(s), nil
}

func (p *Player) apply(s algo.Step) error {
	switch s.Kind {
	case algo.KindHighlight:
		p.bars.Highlight(s.I, s.Color)
	case algo.KindUnhighlight:
		p.bars.Unhighlight(s.I)
	case algo.KindSwap:
		if err := p.bars.Swap(s.I, s.J); err != nil {
			return fmt.Errorf("step %d: %w", p.steps, err)
		}
	case algo.KindCompare, algo.KindPause:
	default:
		return fmt.Errorf("step %d: unknown step kind %v", p.steps, s.Kind)
	}
	return nil
}

// Run drives the sequence to completion, waiting after each step for the
// delay its pacing asks for. The context only interrupts the waiting.
func (p *Player) Run(ctx context.Context) (*Result, error) {
	for _, m := range p.metrics {
		m.Reset()
	}

	start := time.Now()
	for {
		_, delay, err := p.Step()
		if errors.Is(err, ErrFinished) {
			break
		}
		if err != nil {
			return p.result(start), err
		}
		if delay > 0 {
			if err := p.sleep(ctx, delay); err != nil {
				p.finish()
				return p.result(start), err
			}
		}
	}
	return p.result(start), nil
}

// Result summarizes the steps applied so far.
func (p *Player) Result() *Result { return p.result(time.Time{}) }

func (p *Player) result(start time.Time) *Result {
	r := &Result{
		Steps:   p.steps,
		Metrics: make(map[string]float64, len(p.metrics)),
	}
	if !start.IsZero() {
		r.Elapsed = time.Since(start)
	}
	for _, m := range p.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}

// Close releases the underlying sequence. It is safe to call more than once.
func (p *Player) Close() { p.finish() }

func (p *Player) finish() {
	if p.done {
		return
	}
	p.done = true
	p.stop()
	p.bars.ClearHighlights()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
