package metrics

import (
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/player"
)

// Counter counts steps of a single kind.
type Counter struct {
	name  string
	kind  algo.Kind
	count int
}

func NewComparisons() *Counter {
	return &Counter{name: "comparisons", kind: algo.KindCompare}
}

func NewSwaps() *Counter {
	return &Counter{name: "swaps", kind: algo.KindSwap}
}

func NewHighlights() *Counter {
	return &Counter{name: "highlights", kind: algo.KindHighlight}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s algo.Step) {
	if s.Kind == c.kind {
		c.count++
	}
}

func (c *Counter) Value() float64 { return float64(c.count) }

func (c *Counter) Reset() { c.count = 0 }

// Steps counts every step regardless of kind.
type Steps struct {
	count int
}

func NewSteps() *Steps { return &Steps{} }

func (s *Steps) Name() string           { return "steps" }
func (s *Steps) Observe(step algo.Step) { s.count++ }
func (s *Steps) Value() float64         { return float64(s.count) }
func (s *Steps) Reset()                 { s.count = 0 }

// Default returns the standard metric set, freshly allocated.
func Default() []player.Metric {
	return []player.Metric{
		NewComparisons(),
		NewSwaps(),
		NewHighlights(),
		NewSteps(),
	}
}

// Names lists the names of Default in display order.
func Names() []string {
	ms := Default()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name()
	}
	return names
}
