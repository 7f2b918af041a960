package metrics

import "github.com/san-kum/responsiv/internal/sim"

// Headline is the fixed set of figures printed above the chart. It keys on
// the selected quality, not the rendered one.
type Headline struct {
	Conversion string `json:"conversion"`
	BounceRate string `json:"bounce_rate"`
	Revenue    string `json:"revenue"`
	Healthy    bool   `json:"healthy"`
}

func HeadlineFor(q sim.Quality) Headline {
	switch q {
	case sim.QualityPerfect:
		return Headline{Conversion: "4.8%", BounceRate: "24%", Revenue: "$48,290", Healthy: true}
	case sim.QualityBad:
		return Headline{Conversion: "1.2%", BounceRate: "65%", Revenue: "$12,400"}
	}
	return Headline{Conversion: "0.4%", BounceRate: "88%", Revenue: "$2,100"}
}
