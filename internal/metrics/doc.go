// Package metrics fabricates the "live" analytics shown next to the demo.
//
// Nothing here is measured. A [Generator] produces a fixed-length series
// biased by the selected quality, and a [Ticker] advances it on a wall-clock
// interval until it is stopped or the quality changes.
package metrics
