package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/store"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// statusError maps domain and upstream errors onto huma status errors. msg
// prefixes the message of errors that fall through to 500.
func statusError(msg string, err error) error {
	switch {
	case errors.Is(err, engine.ErrBadRequest):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, engine.ErrCheckInProgress):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, kapaipai.ErrUpstream), errors.Is(err, kapaipai.ErrUpstreamProtocol):
		return huma.Error502BadGateway("marketplace error: " + err.Error())
	default:
		return huma.Error500InternalServerError(msg + ": " + err.Error())
	}
}
