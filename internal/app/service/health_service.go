package service

import (
	"context"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

// HealthService serves the readiness summary computed at startup.
type HealthService struct {
	summary dto.HealthResponse
}

func NewHealthService(summary dto.HealthResponse) *HealthService {
	summary.OK = true
	return &HealthService{summary: summary}
}

func (s *HealthService) Health(_ context.Context) dto.HealthResponse {
	return s.summary
}
