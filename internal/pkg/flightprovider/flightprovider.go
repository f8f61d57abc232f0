package flightprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

const (
	Amadeus = "amadeus"
	Duffel  = "duffel"
)

type FlightProvider interface {
	Search(ctx context.Context, params dto.FlightSearchParams) ([]dto.FlightOffer, error)
}

// FlightProviderFactory holds every configured backend. Only one is used per process.
type FlightProviderFactory struct {
	Provider map[string]FlightProvider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]FlightProvider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider FlightProvider) {
	f.Provider[name] = provider
}

// GetProvider returns the backend registered under the exact name, nil if absent.
func (f *FlightProviderFactory) GetProvider(name string) FlightProvider {
	return f.Provider[name]
}

// Select returns the backend registered under name, case insensitive.
func (f *FlightProviderFactory) Select(name string) (FlightProvider, error) {
	provider := f.GetProvider(strings.ToLower(strings.TrimSpace(name)))
	if provider == nil {
		return nil, fmt.Errorf("unknown flight provider %q", name)
	}

	return provider, nil
}
