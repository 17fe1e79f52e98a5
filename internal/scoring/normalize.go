package scoring

import (
	"math"

	"commitscale/internal/model"
)

// Population norms for the 1-5 commitment scale (Allen & Meyer, 1991)
const (
	normMean   = 3.5
	normStddev = 0.8
)

// NormalizedScore is a population-referenced score with percentile ranks.
// Total and each dimension lie in [1,5].
type NormalizedScore struct {
	Total       float64
	Dimensions  model.DimensionScores
	Percentiles model.Percentiles
}

// Normalize maps penalized scores onto the population scale and derives
// percentile ranks.
//
// Note that mean + z*stddev cancels back to the input score, so the
// transform only changes values at the [1,5] clamp boundaries. Kept as
// written until real norm tables replace the placeholder constants; the
// percentile ranks are the meaningful population reference.
func Normalize(s RawScore) NormalizedScore {
	return NormalizedScore{
		Total: rescale(s.Total),
		Dimensions: model.DimensionScores{
			Affective:   rescale(s.Dimensions.Affective),
			Normative:   rescale(s.Dimensions.Normative),
			Continuance: rescale(s.Dimensions.Continuance),
		},
		Percentiles: model.Percentiles{
			Total:       percentile(s.Total),
			Affective:   percentile(s.Dimensions.Affective),
			Normative:   percentile(s.Dimensions.Normative),
			Continuance: percentile(s.Dimensions.Continuance),
		},
	}
}

func rescale(score float64) float64 {
	z := (score - normMean) / normStddev
	normalized := normMean + z*normStddev
	return math.Max(1, math.Min(5, normalized))
}

// percentile returns round(100 * Φ(z)) for the score's z against the norms
func percentile(score float64) int {
	z := (score - normMean) / normStddev
	return int(math.Round(normalCDF(z) * 100))
}

// normalCDF approximates the standard normal cumulative distribution using
// the Zelen & Severo polynomial (Abramowitz & Stegun 26.2.17), accurate to
// about 1e-5
func normalCDF(z float64) float64 {
	t := 1 / (1 + 0.2316419*math.Abs(z))
	d := 0.3989423 * math.Exp(-z*z/2)
	tail := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))
	if z > 0 {
		return 1 - tail
	}
	return tail
}
