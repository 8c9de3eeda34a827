package bars

import "fmt"

type Collection struct {
	bars []Bar
	// ceiling, when positive, replaces the current maximum as the height scale.
	ceiling int
}

// New builds a collection from values, normalizing each through the value
// model and computing heights against the resulting maximum.
func New(values []int) *Collection {
	c := &Collection{bars: make([]Bar, len(values))}
	for i, v := range values {
		if v < 1 {
			v = DefaultValue
		}
		c.bars[i].Value = v
	}
	c.Recompute()
	return c
}

func (c *Collection) Len() int { return len(c.bars) }

// At returns a copy of the bar at i.
func (c *Collection) At(i int) Bar { return c.bars[i] }

func (c *Collection) valid(i int) bool { return i >= 0 && i < len(c.bars) }

func (c *Collection) Values() []int {
	values := make([]int, len(c.bars))
	for i := range c.bars {
		values[i] = c.bars[i].Value
	}
	return values
}

func (c *Collection) Max() int {
	max := 0
	for i := range c.bars {
		if c.bars[i].Value > max {
			max = c.bars[i].Value
		}
	}
	return max
}

// Scale returns the value a height of 100% corresponds to.
func (c *Collection) Scale() int {
	if c.ceiling > 0 {
		return c.ceiling
	}
	return c.Max()
}

// Recompute sets every height against the current scale.
func (c *Collection) Recompute() {
	scale := c.Scale()
	for i := range c.bars {
		c.bars[i].Height = HeightFor(c.bars[i].Value, scale)
	}
}

func (c *Collection) Highlight(i int, color string) {
	if !c.valid(i) {
		return
	}
	c.bars[i].highlight(color)
}

func (c *Collection) Unhighlight(i int) {
	if !c.valid(i) {
		return
	}
	c.bars[i].unhighlight()
}

// ClearHighlights removes the marker from every bar.
func (c *Collection) ClearHighlights() {
	for i := range c.bars {
		c.bars[i].unhighlight()
	}
}

// Swap exchanges value and height of the bars at i and j. Highlight state
// stays with the position.
func (c *Collection) Swap(i, j int) error {
	if !c.valid(i) || !c.valid(j) {
		return fmt.Errorf("bars: swap %d,%d out of range [0,%d)", i, j, len(c.bars))
	}
	if i == j {
		return nil
	}
	a, b := &c.bars[i], &c.bars[j]
	a.Value, b.Value = b.Value, a.Value
	a.Height, b.Height = b.Height, a.Height
	return nil
}

// Sorted reports whether values are non-decreasing.
func (c *Collection) Sorted() bool {
	for i := 1; i < len(c.bars); i++ {
		if c.bars[i-1].Value > c.bars[i].Value {
			return false
		}
	}
	return true
}

func (c *Collection) Clone() *Collection {
	cp := &Collection{bars: make([]Bar, len(c.bars)), ceiling: c.ceiling}
	copy(cp.bars, c.bars)
	return cp
}
