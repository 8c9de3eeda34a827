package bars

import (
	"fmt"
	"math/rand"
)

// Range returns a random integer in [min, max].
func Range(rng *rand.Rand, min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("range [%d,%d]: %w", min, max, ErrInvalidRange)
	}
	return rng.Intn(max-min+1) + min, nil
}

// Randomize builds n bars with values in [1, maxValue]. Heights are scaled
// against maxValue, matching HeightFor for a chart whose ceiling is maxValue.
// When a value cannot be drawn, generation halts and the bars built so far
// are returned with the error.
func Randomize(rng *rand.Rand, n, maxValue int) (*Collection, error) {
	if n < 0 || n > MaxChildren {
		return &Collection{}, fmt.Errorf("%d bars: %w", n, ErrInvalidCount)
	}
	c := &Collection{bars: make([]Bar, 0, n), ceiling: maxValue}
	for i := 0; i < n; i++ {
		v, err := Range(rng, 1, maxValue)
		if err != nil {
			return c, err
		}
		c.bars = append(c.bars, Bar{Value: v, Height: HeightFor(v, maxValue)})
	}
	return c, nil
}
