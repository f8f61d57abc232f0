package city

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/location"
)

var cityCodePattern = regexp.MustCompile(`^[A-Z]{3,4}$`)

// Resolver turns free text places into hotel city codes and display names.
type Resolver struct {
	lookup location.Lookup
}

func NewResolver(lookup location.Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// ResolveCode returns a 3-4 letter code as is, otherwise the best lookup match.
// It returns "" when nothing usable is found or the lookup fails.
func (r *Resolver) ResolveCode(ctx context.Context, input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return ""
	}

	if cityCodePattern.MatchString(s) {
		return s
	}

	items, err := r.lookup.Search(ctx, s)
	if err != nil {
		slog.WarnContext(ctx, "city code lookup failed", slog.String("input", s), slog.Any("error", err))
		return ""
	}

	if item, ok := pick(items, func(l dto.Location) bool { return l.CityCode != "" }); ok {
		return item.CityCode
	}

	return ""
}

// ResolveName returns a display name for input, echoing the trimmed input on any failure.
func (r *Resolver) ResolveName(ctx context.Context, input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return s
	}

	items, err := r.lookup.Search(ctx, s)
	if err != nil {
		slog.WarnContext(ctx, "city name lookup failed", slog.String("input", s), slog.Any("error", err))
		return s
	}

	if item, ok := pick(items, func(l dto.Location) bool { return l.Name != "" }); ok {
		return item.Name
	}

	return s
}

// pick prefers a CITY entry satisfying has, then any entry satisfying it.
func pick(items []dto.Location, has func(dto.Location) bool) (dto.Location, bool) {
	for _, item := range items {
		if item.Type == dto.LocationTypeCity && has(item) {
			return item, true
		}
	}

	for _, item := range items {
		if has(item) {
			return item, true
		}
	}

	return dto.Location{}, false
}
