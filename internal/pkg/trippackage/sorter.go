package trippackage

import (
	"sort"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// SortPackages orders packages in place by strategy. Equal keys keep their input order.
func SortPackages(packages []dto.Package, strategy dto.SortStrategy) []dto.Package {
	switch strategy {
	case dto.SortCheapest:
		sort.SliceStable(packages, func(i, j int) bool {
			ci, cj := ComparisonValue(packages[i]), ComparisonValue(packages[j])
			if ci != cj {
				return ci < cj
			}
			return durationOf(packages[i]) < durationOf(packages[j])
		})
	case dto.SortFastest:
		sort.SliceStable(packages, func(i, j int) bool {
			di, dj := durationOf(packages[i]), durationOf(packages[j])
			if di != dj {
				return di < dj
			}
			return ComparisonValue(packages[i]) < ComparisonValue(packages[j])
		})
	case dto.SortFlexible:
		sort.SliceStable(packages, func(i, j int) bool {
			ri, rj := packages[i].Flight.Refundable, packages[j].Flight.Refundable
			if ri != rj {
				return ri
			}
			return ComparisonValue(packages[i]) < ComparisonValue(packages[j])
		})
	default:
		sort.SliceStable(packages, func(i, j int) bool {
			return Score(packages[i]) < Score(packages[j])
		})
	}

	return packages
}
