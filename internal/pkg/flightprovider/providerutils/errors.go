package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "provider internal error or temporary unavailable",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

var ErrProviderNotConfigured = exception.ApplicationError{
	StatusCode: http.StatusServiceUnavailable,
	Message:    "provider is not configured",
}
