package bars

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

const (
	DefaultValue    = 1
	DefaultChildren = 50
	MaxChildren     = 10000
	DefaultMaxValue = 100

	// DefaultHighlight is used when a bar is highlighted without a color.
	DefaultHighlight = "green"
)

type Bar struct {
	Value       int
	Height      int
	Highlighted bool
	Color       string
}

// ParseValue reads a stored value attribute. Missing, malformed or
// non-positive input yields DefaultValue.
func ParseValue(attr string) int {
	v, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || v < 1 {
		return DefaultValue
	}
	return v
}

// ParseCount reads a container's children attribute, returning fallback when
// the attribute is missing or not an integer in [0, MaxChildren].
func ParseCount(attr string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n < 0 || n > MaxChildren {
		return fallback
	}
	return n
}

// HeightFor returns floor(value / max * 100).
func HeightFor(value, max int) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(value), 100)
	if hi >= uint64(max) {
		return math.MaxInt
	}
	q, _ := bits.Div64(hi, lo, uint64(max))
	if q > math.MaxInt {
		return math.MaxInt
	}
	return int(q)
}

func (b *Bar) highlight(color string) {
	if color == "" {
		color = DefaultHighlight
	}
	b.Highlighted = true
	b.Color = color
}

func (b *Bar) unhighlight() {
	b.Highlighted = false
	b.Color = ""
}
