package player

import (
	"time"

	"github.com/san-kum/sortviz/internal/algo"
)

const (
	DefaultFrame    = time.Second / 60
	DefaultSwap     = 100 * time.Millisecond
	DefaultCompare  = 250 * time.Millisecond
	DefaultScan     = 100 * time.Millisecond
	DefaultFlourish = 250 * time.Millisecond
)

// Pacing maps steps to the delay a renderer waits after applying them.
type Pacing struct {
	Frame    time.Duration
	Swap     time.Duration
	Compare  time.Duration
	Scan     time.Duration
	Flourish time.Duration
}

func DefaultPacing() Pacing {
	return Pacing{
		Frame:    DefaultFrame,
		Swap:     DefaultSwap,
		Compare:  DefaultCompare,
		Scan:     DefaultScan,
		Flourish: DefaultFlourish,
	}
}

// Instant is a pacing with no delays at all.
func Instant() Pacing { return Pacing{} }

// Scale multiplies every delay by factor. Non-positive factors yield Instant.
func (p Pacing) Scale(factor float64) Pacing {
	if factor <= 0 {
		return Instant()
	}
	scale := func(d time.Duration) time.Duration { return time.Duration(float64(d) * factor) }
	return Pacing{
		Frame:    scale(p.Frame),
		Swap:     scale(p.Swap),
		Compare:  scale(p.Compare),
		Scan:     scale(p.Scan),
		Flourish: scale(p.Flourish),
	}
}

// DelayFor returns how long to wait after s has been applied. A swap waits
// one frame plus the swap delay.
func (p Pacing) DelayFor(s algo.Step) time.Duration {
	switch s.Kind {
	case algo.KindSwap:
		return p.Frame + p.Swap
	case algo.KindPause:
		switch s.Pace {
		case algo.PaceCompare:
			return p.Compare
		case algo.PaceScan:
			return p.Scan
		case algo.PaceFlourish:
			return p.Flourish
		}
	}
	return 0
}
