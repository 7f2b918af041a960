// Package viz renders the responsive-design demo in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: the demo model wiring the state store, metrics ticker and lead form
//   - [FrameView]: a device frame with the LUXECART storefront laid out inside
//   - [RenderAnalytics]: the live metrics sidebar
//   - [Canvas]: a rune grid used to crop and overlay the storefront
//
// # Key Bindings
//
//	1 2 3 - responsiveness none / bad / perfect
//	m t d - mobile / tablet / desktop
//	e     - cycle era
//	u     - simulate a visitor
//	a     - toggle live metrics
//	c     - cinematic mode
//	l     - request a free audit
//	r     - reset
//	?     - show help overlay
package viz
