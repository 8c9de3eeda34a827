package algo

import "iter"

type span struct{ low, high int }

// Quick yields the steps of a Lomuto quicksort over values. Ranges are taken
// from an explicit stack so each range's steps finish before the next range
// starts, left before right.
func Quick(values []int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		a := clone(values)
		e := &emitter{yield: yield}

		stack := []span{{0, len(a) - 1}}
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if r.low >= r.high {
				continue
			}

			p, ok := partition(e, a, r.low, r.high)
			if !ok {
				return
			}
			stack = append(stack, span{p + 1, r.high}, span{r.low, p - 1})
		}
	}
}

// partition places a[high] at its final slot and returns that slot.
func partition(e *emitter, a []int, low, high int) (int, bool) {
	pivot := a[high]
	if !e.emit(Highlight(high, PivotColor)) {
		return 0, false
	}

	idx := low - 1
	for i := low; i < high; i++ {
		if !e.emit(Pause(PaceScan), Highlight(i, ""), Compare(i, high)) {
			return 0, false
		}
		if a[i] <= pivot {
			idx++
			a[i], a[idx] = a[idx], a[i]
			if !e.emit(Highlight(idx, ""), Swap(i, idx), Unhighlight(idx)) {
				return 0, false
			}
		}
		if !e.emit(Unhighlight(i)) {
			return 0, false
		}
	}

	idx++
	a[high], a[idx] = a[idx], a[high]
	ok := e.emit(
		Unhighlight(high),
		Pause(PaceScan),
		Highlight(high, ""),
		Highlight(idx, ""),
		Swap(high, idx),
		Unhighlight(high),
		Unhighlight(idx),
	)
	return idx, ok
}
