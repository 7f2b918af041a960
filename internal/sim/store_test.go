package sim_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/responsiv/internal/sim"
)

var _ = Describe("Store", func() {
	var st *sim.Store

	BeforeEach(func() {
		st = sim.New(sim.DefaultState())
	})

	It("starts from the initial state", func() {
		Expect(st.Snapshot()).To(Equal(sim.DefaultState()))
	})

	Describe("enum setters", func() {
		It("reflects every quality from every prior quality", func() {
			for _, from := range sim.Qualities {
				for _, to := range sim.Qualities {
					st.SetQuality(from)
					before := st.Snapshot()
					st.SetQuality(to)
					after := st.Snapshot()
					Expect(after.Quality).To(Equal(to))
					Expect(after.Device).To(Equal(before.Device))
					Expect(after.Era).To(Equal(before.Era))
				}
			}
		})

		It("reflects every device without touching other fields", func() {
			st.SetQuality(sim.QualityBad)
			st.SetEra(sim.Era2010)
			for _, d := range sim.Devices {
				st.SetDevice(d)
				s := st.Snapshot()
				Expect(s.Device).To(Equal(d))
				Expect(s.Quality).To(Equal(sim.QualityBad))
				Expect(s.Era).To(Equal(sim.Era2010))
			}
		})

		It("reflects every era without touching other fields", func() {
			st.SetDevice(sim.DeviceTablet)
			for _, e := range sim.Eras {
				st.SetEra(e)
				s := st.Snapshot()
				Expect(s.Era).To(Equal(e))
				Expect(s.Device).To(Equal(sim.DeviceTablet))
				Expect(s.Quality).To(Equal(sim.QualityPerfect))
			}
		})
	})

	Describe("toggles", func() {
		It("flips each flag independently", func() {
			st.ToggleSimulateUser()
			Expect(st.Snapshot().SimulateUser).To(BeTrue())
			Expect(st.Snapshot().CinematicMode).To(BeFalse())

			st.ToggleCinematicMode()
			Expect(st.Snapshot().CinematicMode).To(BeTrue())

			st.ToggleAnalytics()
			Expect(st.Snapshot().ShowAnalytics).To(BeFalse())
			st.ToggleAnalytics()
			Expect(st.Snapshot().ShowAnalytics).To(BeTrue())
		})

		It("supports explicit setters", func() {
			st.SetCinematicMode(true)
			st.SetShowAnalytics(false)
			st.SetSimulateUser(true)
			s := st.Snapshot()
			Expect(s.CinematicMode).To(BeTrue())
			Expect(s.ShowAnalytics).To(BeFalse())
			Expect(s.SimulateUser).To(BeTrue())
		})
	})

	Describe("observers", func() {
		It("receives previous and current state on every mutation", func() {
			var got [][2]sim.State
			st.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) {
				got = append(got, [2]sim.State{prev, cur})
			}))

			st.SetQuality(sim.QualityNone)
			st.SetDevice(sim.DeviceMobile)

			Expect(got).To(HaveLen(2))
			Expect(got[0][0].Quality).To(Equal(sim.QualityPerfect))
			Expect(got[0][1].Quality).To(Equal(sim.QualityNone))
			Expect(got[1][0].Device).To(Equal(sim.DeviceDesktop))
			Expect(got[1][1].Device).To(Equal(sim.DeviceMobile))
		})

		It("notifies even when the value does not change", func() {
			calls := 0
			st.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) { calls++ }))
			st.SetQuality(sim.QualityPerfect)
			Expect(calls).To(Equal(1))
		})

		It("stops notifying after unsubscribe", func() {
			calls := 0
			unsub := st.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) { calls++ }))
			st.ToggleAnalytics()
			unsub()
			unsub()
			st.ToggleAnalytics()
			Expect(calls).To(Equal(1))
		})

		It("allows an observer to read the store", func() {
			var seen sim.Quality
			st.Subscribe(sim.ObserverFunc(func(prev, cur sim.State) {
				seen = st.Snapshot().Quality
			}))
			st.SetQuality(sim.QualityBad)
			Expect(seen).To(Equal(sim.QualityBad))
		})
	})

	It("resets to the initial state", func() {
		st.SetQuality(sim.QualityNone)
		st.SetEra(sim.Era2010)
		st.ToggleCinematicMode()
		st.Reset()
		Expect(st.Snapshot()).To(Equal(sim.DefaultState()))
	})

	It("is safe under concurrent mutation", func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				st.SetQuality(sim.Qualities[i%3])
				st.SetDevice(sim.Devices[i%3])
				_ = st.Snapshot()
			}(i)
		}
		wg.Wait()
		Expect(st.Snapshot().Quality.Valid()).To(BeTrue())
	})
})
