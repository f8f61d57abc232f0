package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
)

type RateConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, float64, error)
}

type FXService struct {
	Converter RateConverter
}

func NewFXService(converter RateConverter) *FXService {
	return &FXService{Converter: converter}
}

// Convert godoc
// @Summary      Convert an amount between currencies
// @Tags         FX
// @Param        request  body      dto.ConvertRequest  true  "Convert Request"
// @Success      200      {object}  dto.ConvertResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/fx/convert [post]
func (s *FXService) Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error) {
	converted, rate, err := s.Converter.Convert(ctx, req.Amount, req.From, req.To)
	if err != nil {
		slog.ErrorContext(ctx, "fx conversion failed",
			slog.String("from", req.From),
			slog.String("to", req.To),
			slog.Any("error", err))
		return dto.ConvertResponse{}, ErrFXUpstreamFailed.Wrap(err)
	}

	return dto.ConvertResponse{
		Amount:    req.Amount,
		From:      req.From,
		To:        req.To,
		Rate:      rate,
		Converted: converted,
	}, nil
}
