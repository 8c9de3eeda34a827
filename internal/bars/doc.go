// Package bars holds the visual state of a sorting chart.
//
// A [Collection] is an ordered sequence of [Bar] values. Each bar carries an
// integer value, a display height derived from that value, and a highlight
// marker used while the bar is being compared or moved:
//
//   - [ParseValue]: reads a stored value attribute, defaulting to 1
//   - [HeightFor]: maps a value to a height percentage of the maximum
//   - [Collection.Swap]: exchanges value and height of two bars together
//   - [Randomize]: builds a fresh collection of random values
//
// # Thread Safety
//
// Collection is NOT thread-safe. Exclusive access during a sort is granted by
// the session controller's busy token.
package bars
