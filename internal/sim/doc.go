// Package sim holds the presentation state of the demo.
//
// The package defines the simulation parameters every view reads from:
//
//   - [Quality]: simulated responsiveness grade (none, bad, perfect)
//   - [Device]: simulated viewport class (mobile, tablet, desktop)
//   - [Era]: visual theme of the sample site (2010, 2020, 2026)
//   - [State]: the full record, including the UI toggles
//   - [Store]: injectable container with observer notification
//
// # Example
//
//	st := sim.New(sim.DefaultState())
//	unsub := st.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) {
//		fmt.Println(prev.Quality, "->", cur.Quality)
//	}))
//	defer unsub()
//	st.SetQuality(sim.QualityBad)
//
// # Thread Safety
//
// Store methods are safe for concurrent use. Observers run synchronously on
// the goroutine that performed the mutation, after the lock is released.
package sim
