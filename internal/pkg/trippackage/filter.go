package trippackage

import (
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// ComparisonValue is the converted total when present, else the USD total.
func ComparisonValue(p dto.Package) float64 {
	if p.TotalCostConverted != nil {
		return *p.TotalCostConverted
	}

	return p.TotalCost
}

// FilterPackages keeps packages whose comparison value lies in [minBudget, maxBudget].
// A nil bound is not applied.
func FilterPackages(packages []dto.Package, minBudget, maxBudget *float64) []dto.Package {
	if minBudget == nil && maxBudget == nil {
		return packages
	}

	results := make([]dto.Package, 0, len(packages))
	for _, p := range packages {
		value := ComparisonValue(p)

		if minBudget != nil && value < *minBudget {
			continue
		}

		if maxBudget != nil && value > *maxBudget {
			continue
		}

		results = append(results, p)
	}

	return results
}
