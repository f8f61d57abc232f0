package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/app/dto"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. Application errors keep their
// status and message, anything else is logged and hidden behind a generic 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		status  int
		message string
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message

		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, message, slog.Any("error", err))
		}
	} else {
		status = http.StatusInternalServerError
		message = "internal server error"

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", contentTypeJSON)
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
	})
}
