package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

var errInvalidType = errors.New("invalid type")

type SearchService interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type LocationService interface {
	SearchLocations(ctx context.Context, req dto.LocationQuery) (dto.LocationResponse, error)
}

type FXService interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
}

type HealthService interface {
	Health(ctx context.Context) dto.HealthResponse
}

// Endpoints groups every endpoint exposed by the HTTP transport.
type Endpoints struct {
	Search    endpoint.Endpoint
	Locations endpoint.Endpoint
	FXConvert endpoint.Endpoint
	Health    endpoint.Endpoint
}

func MakeEndpoints(search SearchService, locations LocationService, fx FXService, health HealthService) Endpoints {
	return Endpoints{
		Search:    makeSearchEndpoint(search),
		Locations: makeLocationsEndpoint(locations),
		FXConvert: makeFXConvertEndpoint(fx),
		Health:    makeHealthEndpoint(health),
	}
}

func makeSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return resp, nil
	}
}

func makeLocationsEndpoint(service LocationService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LocationQuery)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.SearchLocations(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("location service: %w", err)
		}

		return resp, nil
	}
}

func makeFXConvertEndpoint(service FXService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ConvertRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.Convert(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("fx service: %w", err)
		}

		return resp, nil
	}
}

func makeHealthEndpoint(service HealthService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.Health(ctx), nil
	}
}
