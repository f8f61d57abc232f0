package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

var ErrInvalidRequestBody = exception.BadRequest("invalid request body")

// binder is satisfied by request DTOs that validate themselves after decoding.
type binder[T any] interface {
	*T
	render.Binder
}

// MakeHandlerFunc adapts an endpoint to an http.HandlerFunc with the shared error encoder.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		ep,
		dec,
		enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body into T and runs its Bind hook.
func DecodeRequest[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrInvalidRequestBody.Wrap(err)
	}

	return req, nil
}

// DecodeQuery runs the Bind hook of T, which reads the URL query itself.
func DecodeQuery[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

func DecodeNothing(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
