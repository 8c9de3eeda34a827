package algo

import "iter"

// Bubble yields the steps of an optimized bubble sort over values, followed
// by a flourish that sweeps a highlight across the sorted bars.
func Bubble(values []int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		a := clone(values)
		e := &emitter{yield: yield}
		n := len(a)

		for i := 0; i < n; i++ {
			swapped := false
			for j := 0; j < n-i-1; j++ {
				if !e.emit(Highlight(j, ""), Highlight(j+1, ""), Pause(PaceCompare), Compare(j, j+1)) {
					return
				}
				if a[j] > a[j+1] {
					a[j], a[j+1] = a[j+1], a[j]
					swapped = true
					if !e.emit(Swap(j, j+1)) {
						return
					}
				}
				if !e.emit(Unhighlight(j), Unhighlight(j+1)) {
					return
				}
			}
			if !swapped {
				break
			}
		}

		for i := 0; i < n; i++ {
			if !e.emit(Highlight(i, ""), Pause(PaceFlourish), Unhighlight(i)) {
				return
			}
		}
	}
}

func clone(values []int) []int {
	c := make([]int, len(values))
	copy(c, values)
	return c
}
