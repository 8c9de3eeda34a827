// Package algo implements the sort drivers as lazy step sequences.
//
// A driver never touches the chart. It sorts a private copy of its input and
// yields the [Step] values a renderer must replay to animate the same sort:
// highlight, compare, swap, unhighlight and symbolic pauses. Timing is left to
// the consumer, which maps each [Pace] to a concrete delay.
//
//	seq := algo.Bubble([]int{5, 3, 1, 4})
//	for step := range seq {
//		fmt.Println(step)
//	}
package algo
