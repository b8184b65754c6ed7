package planner

import "strconv"

// Daily rates in rupees for the coarse budget tiers
const (
	lowDailyRate    = 2000.0
	mediumDailyRate = 5000.0
	highDailyRate   = 10000.0
)

var tierRates = map[string]float64{
	"Low":    lowDailyRate,
	"Medium": mediumDailyRate,
	"High":   highDailyRate,
}

// ResolveDailyRate maps a budget selector to a daily rate. A numeric literal is
// used as-is; otherwise the tier table applies, and anything unrecognized
// degrades to the Medium rate. It never fails: downstream code relies on
// always receiving a usable number.
func ResolveDailyRate(input string) float64 {
	if rate, err := strconv.ParseFloat(input, 64); err == nil {
		return rate
	}
	if rate, ok := tierRates[input]; ok {
		return rate
	}
	return mediumDailyRate
}
