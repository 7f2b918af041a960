package metrics

import (
	"math/rand"
	"testing"

	"github.com/san-kum/responsiv/internal/sim"
)

func TestGeneratorLengthAndRange(t *testing.T) {
	for _, q := range sim.Qualities {
		g := NewGenerator(DefaultLength, rand.NewSource(7))
		g.Seed(q)
		if len(g.Series()) != DefaultLength {
			t.Fatalf("%v: expected %d points after seed, got %d", q, DefaultLength, len(g.Series()))
		}
		for i := 0; i < 500; i++ {
			g.Tick()
			s := g.Series()
			if len(s) != DefaultLength {
				t.Fatalf("%v: length changed to %d after %d ticks", q, len(s), i+1)
			}
			for _, v := range s {
				if v < MinValue || v > MaxValue {
					t.Fatalf("%v: value %f out of range", q, v)
				}
			}
		}
	}
}

func TestGeneratorSeedBias(t *testing.T) {
	mean := func(q sim.Quality) float64 {
		g := NewGenerator(200, rand.NewSource(1))
		g.Seed(q)
		sum := 0.0
		for _, v := range g.Series() {
			sum += v
		}
		return sum / 200
	}

	perfect, bad, none := mean(sim.QualityPerfect), mean(sim.QualityBad), mean(sim.QualityNone)
	if !(perfect > bad && bad > none) {
		t.Errorf("expected perfect > bad > none, got %.1f %.1f %.1f", perfect, bad, none)
	}
}

func TestGeneratorTickShiftsWindow(t *testing.T) {
	g := NewGenerator(5, rand.NewSource(3))
	g.Seed(sim.QualityBad)
	before := g.Series()
	next := g.Tick()
	after := g.Series()

	for i := 0; i < 4; i++ {
		if after[i] != before[i+1] {
			t.Fatalf("expected window shift at %d: %f != %f", i, after[i], before[i+1])
		}
	}
	if after[4] != next || g.Last() != next {
		t.Errorf("expected last point %f, got %f", next, after[4])
	}
	if d := next - before[4]; d < -5 || d > 5 {
		t.Errorf("bad quality step should be within ±5, got %f", d)
	}
}

func TestGeneratorReseedDropsOldSeries(t *testing.T) {
	g := NewGenerator(DefaultLength, rand.NewSource(11))
	g.Seed(sim.QualityNone)
	for i := 0; i < 30; i++ {
		g.Tick()
	}
	g.Seed(sim.QualityPerfect)

	if g.Ticks() != 0 {
		t.Errorf("expected tick counter reset, got %d", g.Ticks())
	}
	if g.Quality() != sim.QualityPerfect {
		t.Errorf("expected perfect, got %v", g.Quality())
	}
	for _, v := range g.Series() {
		if v < 75 || v > 90 {
			t.Errorf("perfect seed value %f outside [75,90]", v)
		}
	}
}

func TestGeneratorTickWithoutSeed(t *testing.T) {
	g := NewGenerator(0, rand.NewSource(5))
	g.Tick()
	if len(g.Series()) != DefaultLength {
		t.Errorf("expected lazy seed to %d points, got %d", DefaultLength, len(g.Series()))
	}
}

func TestHeadlineFor(t *testing.T) {
	if h := HeadlineFor(sim.QualityPerfect); h.Conversion != "4.8%" || !h.Healthy {
		t.Errorf("unexpected perfect headline %+v", h)
	}
	if h := HeadlineFor(sim.QualityBad); h.BounceRate != "65%" || h.Healthy {
		t.Errorf("unexpected bad headline %+v", h)
	}
	if h := HeadlineFor(sim.QualityNone); h.Revenue != "$2,100" {
		t.Errorf("unexpected none headline %+v", h)
	}
}
