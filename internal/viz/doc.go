// Package viz provides the terminal bar chart for sorting animations.
//
// The package implements an interactive TUI using the Bubble Tea framework.
// [Model] pulls steps from a session run on timed ticks, so a sort advances
// only as fast as its pacing allows while the chart repaints between steps.
//
// # Key Bindings
//
//	R       - Randomize the chart
//	S/Enter - Start sorting
//	X       - Stop (a running sort always completes)
//	Tab     - Cycle sorting type
//	T       - Cycle color themes
//	+/-     - Speed up / slow down
//	?       - Show full help
//	Q       - Quit
package viz
