//go:build unit

package trippackage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func pkg(id string, cost float64, duration *int, refundable bool) dto.Package {
	return dto.Package{
		ID:        id,
		TotalCost: cost,
		Flight: dto.FlightOffer{
			ID:              id,
			DurationMinutes: duration,
			Refundable:      refundable,
		},
	}
}

func ids(packages []dto.Package) []string {
	out := make([]string, len(packages))
	for i, p := range packages {
		out[i] = p.ID
	}
	return out
}

func TestFilterPackages(t *testing.T) {
	packages := []dto.Package{
		pkg("a", 750, nil, false),
		pkg("b", 800, nil, false),
		pkg("c", 1000, nil, false),
		pkg("d", 1200, nil, false),
		pkg("e", 1250, nil, false),
	}

	converted := pkg("f", 2000, nil, false)
	converted.TotalCostConverted = ptrFloat(900)
	packages = append(packages, converted)

	filterRequest := func(minBudget, maxBudget *float64, want []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterPackages(packages, minBudget, maxBudget)
			if diff := cmp.Diff(want, ids(got)); diff != "" {
				t.Fatalf("FilterPackages() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("inclusive_bounds", filterRequest(ptrFloat(800), ptrFloat(1200), []string{"b", "c", "d", "f"}))
	t.Run("min_only", filterRequest(ptrFloat(1200), nil, []string{"d", "e"}))
	t.Run("max_only", filterRequest(nil, ptrFloat(800), []string{"a", "b"}))
	t.Run("no_bounds", filterRequest(nil, nil, []string{"a", "b", "c", "d", "e", "f"}))
}

func TestSortPackages(t *testing.T) {
	packages := func() []dto.Package {
		return []dto.Package{
			pkg("slow-cheap", 500, ptrInt(900), false),
			pkg("fast-pricey", 900, ptrInt(300), true),
			pkg("no-duration", 400, nil, false),
			pkg("mid", 700, ptrInt(300), true),
			pkg("tie-cheap", 500, ptrInt(900), false),
		}
	}

	sortRequest := func(strategy dto.SortStrategy, want []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := SortPackages(packages(), strategy)
			if diff := cmp.Diff(want, ids(got)); diff != "" {
				t.Fatalf("SortPackages(%s) mismatch (-want +got):\n%s", strategy, diff)
			}
		}
	}

	t.Run("cheapest", sortRequest(dto.SortCheapest, []string{"no-duration", "slow-cheap", "tie-cheap", "mid", "fast-pricey"}))
	t.Run("fastest", sortRequest(dto.SortFastest, []string{"mid", "fast-pricey", "slow-cheap", "tie-cheap", "no-duration"}))
	t.Run("flexible", sortRequest(dto.SortFlexible, []string{"mid", "fast-pricey", "no-duration", "slow-cheap", "tie-cheap"}))
	t.Run("best", sortRequest(dto.SortBest, []string{"mid", "slow-cheap", "tie-cheap", "fast-pricey", "no-duration"}))
}

func TestSortPackages_Deterministic(t *testing.T) {
	build := func() []dto.Package {
		return []dto.Package{
			pkg("1", 100, ptrInt(60), false),
			pkg("2", 100, ptrInt(60), false),
			pkg("3", 100, ptrInt(60), false),
		}
	}

	for _, strategy := range []dto.SortStrategy{dto.SortBest, dto.SortCheapest, dto.SortFastest, dto.SortFlexible} {
		assert.Equal(t, []string{"1", "2", "3"}, ids(SortPackages(build(), strategy)), string(strategy))
	}
}

func TestRankPackages(t *testing.T) {
	packages := RankPackages([]dto.Package{
		pkg("a", 500, ptrInt(300), false),
		pkg("b", 500, nil, false),
	})

	assert.Equal(t, 650.0, packages[0].Score)
	assert.Equal(t, 500+MissingDuration/2, packages[1].Score)
}
