package trippackage

import (
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// MissingDuration ranks flights without a duration after every known one.
const MissingDuration = float64(1<<53 - 1)

// WeightDuration scales duration minutes against cost in the blended score.
const WeightDuration = 0.5

func durationOf(p dto.Package) float64 {
	if p.Flight.DurationMinutes == nil {
		return MissingDuration
	}

	return float64(*p.Flight.DurationMinutes)
}

// Score is cost + duration/2. Lower is better.
func Score(p dto.Package) float64 {
	return ComparisonValue(p) + WeightDuration*durationOf(p)
}

// RankPackages writes the blended score of every package.
func RankPackages(packages []dto.Package) []dto.Package {
	for i := range packages {
		packages[i].Score = Score(packages[i])
	}

	return packages
}
