package algo

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

var ErrUnknownAlgorithm = errors.New("algo: this sorting type either does not exist or is not yet implemented")

// Algorithm turns an input into its animation steps.
type Algorithm func(values []int) iter.Seq[Step]

const (
	BubbleSort = "bubble-sort"
	QuickSort  = "quick-sort"
)

var algorithms = map[string]Algorithm{
	BubbleSort: Bubble,
	QuickSort:  Quick,
}

func Lookup(name string) (Algorithm, error) {
	fn, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Replay applies the swaps in steps to a copy of values and returns the result.
func Replay(values []int, steps iter.Seq[Step]) []int {
	a := clone(values)
	for s := range steps {
		if s.Kind == KindSwap {
			a[s.I], a[s.J] = a[s.J], a[s.I]
		}
	}
	return a
}
