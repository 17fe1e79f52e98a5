package scoring

import "commitscale/internal/model"

// Classify maps a normalized total score to its commitment level. Band
// lower bounds are inclusive.
func Classify(total float64) model.Level {
	switch {
	case total >= 4.0:
		return model.LevelVeryHigh
	case total >= 3.5:
		return model.LevelHigh
	case total >= 2.5:
		return model.LevelMedium
	case total >= 2.0:
		return model.LevelLow
	default:
		return model.LevelVeryLow
	}
}
