package metrics

import (
	"math/rand"

	"github.com/san-kum/responsiv/internal/sim"
)

const (
	DefaultLength = 20
	MinValue      = 0.0
	MaxValue      = 100.0
	stepSpread    = 10.0
)

// Bias is the per-quality shape of the series.
type Bias struct {
	Base       float64
	Volatility float64
	Trend      float64
}

func Profile(q sim.Quality) Bias {
	switch q {
	case sim.QualityPerfect:
		return Bias{Base: 80, Volatility: 10, Trend: 1}
	case sim.QualityBad:
		return Bias{Base: 40, Volatility: 20, Trend: 0}
	}
	return Bias{Base: 15, Volatility: 20, Trend: -1}
}

// Generator holds a sliding window of synthetic values. It is not safe for
// concurrent use; Ticker serializes access to the one it owns.
type Generator struct {
	rng     *rand.Rand
	n       int
	quality sim.Quality
	values  []float64
	ticks   int
}

func NewGenerator(n int, src rand.Source) *Generator {
	if n < 1 {
		n = DefaultLength
	}
	return &Generator{
		rng:    rand.New(src),
		n:      n,
		values: make([]float64, 0, n),
	}
}

// Seed discards the current series and draws n fresh points for q.
func (g *Generator) Seed(q sim.Quality) {
	b := Profile(q)
	g.quality = q
	g.ticks = 0
	g.values = g.values[:0]
	for i := 0; i < g.n; i++ {
		v := b.Base + g.rng.Float64()*b.Volatility - g.rng.Float64()*b.Volatility/2
		g.values = append(g.values, clamp(v))
	}
}

// Tick drops the oldest point and appends prev + trend + noise.
func (g *Generator) Tick() float64 {
	if len(g.values) == 0 {
		g.Seed(g.quality)
	}
	prev := g.values[len(g.values)-1]
	next := clamp(prev + Profile(g.quality).Trend + (g.rng.Float64()-0.5)*stepSpread)
	copy(g.values, g.values[1:])
	g.values[len(g.values)-1] = next
	g.ticks++
	return next
}

func (g *Generator) Series() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return out
}

func (g *Generator) Quality() sim.Quality { return g.quality }
func (g *Generator) Len() int             { return g.n }
func (g *Generator) Ticks() int           { return g.ticks }

func (g *Generator) Last() float64 {
	if len(g.values) == 0 {
		return 0
	}
	return g.values[len(g.values)-1]
}

func clamp(v float64) float64 {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
