package algo

import "fmt"

type Kind int

const (
	KindHighlight Kind = iota
	KindUnhighlight
	KindCompare
	KindSwap
	KindPause
)

func (k Kind) String() string {
	switch k {
	case KindHighlight:
		return "highlight"
	case KindUnhighlight:
		return "unhighlight"
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindPause:
		return "pause"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pace names a delay class. The consumer decides how long each one lasts.
type Pace int

const (
	PaceNone Pace = iota
	PaceCompare
	PaceScan
	PaceFlourish
)

func (p Pace) String() string {
	switch p {
	case PaceCompare:
		return "compare"
	case PaceScan:
		return "scan"
	case PaceFlourish:
		return "flourish"
	default:
		return "none"
	}
}

const PivotColor = "teal"

// Step is one discrete animation event. J is -1 for single-index steps.
type Step struct {
	Kind  Kind
	I, J  int
	Color string
	Pace  Pace
}

func Highlight(i int, color string) Step {
	return Step{Kind: KindHighlight, I: i, J: -1, Color: color}
}

func Unhighlight(i int) Step {
	return Step{Kind: KindUnhighlight, I: i, J: -1}
}

func Compare(i, j int) Step {
	return Step{Kind: KindCompare, I: i, J: j}
}

func Swap(i, j int) Step {
	return Step{Kind: KindSwap, I: i, J: j}
}

func Pause(p Pace) Step {
	return Step{Kind: KindPause, I: -1, J: -1, Pace: p}
}

func (s Step) String() string {
	switch s.Kind {
	case KindHighlight:
		if s.Color != "" {
			return fmt.Sprintf("highlight %d (%s)", s.I, s.Color)
		}
		return fmt.Sprintf("highlight %d", s.I)
	case KindUnhighlight:
		return fmt.Sprintf("unhighlight %d", s.I)
	case KindCompare:
		return fmt.Sprintf("compare %d %d", s.I, s.J)
	case KindSwap:
		return fmt.Sprintf("swap %d %d", s.I, s.J)
	case KindPause:
		return fmt.Sprintf("pause %s", s.Pace)
	default:
		return s.Kind.String()
	}
}

// emitter forwards steps to yield until the consumer stops pulling.
type emitter struct {
	yield   func(Step) bool
	stopped bool
}

func (e *emitter) emit(steps ...Step) bool {
	for _, s := range steps {
		if e.stopped {
			return false
		}
		if !e.yield(s) {
			e.stopped = true
		}
	}
	return !e.stopped
}
