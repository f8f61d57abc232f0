package service

import (
	"net/http"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

var (
	ErrSearchFailed = exception.ApplicationError{
		Message:    "search failed",
		StatusCode: http.StatusInternalServerError,
	}

	ErrLocationsFailed = exception.ApplicationError{
		Message:    "Locations failed",
		StatusCode: http.StatusInternalServerError,
	}

	ErrFXUpstreamFailed = exception.ApplicationError{
		Message:    "FX upstream failed",
		StatusCode: http.StatusBadGateway,
	}
)
