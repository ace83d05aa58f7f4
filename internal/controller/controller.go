// Package controller holds helpers shared by the user and admin HTTP
// controllers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyExists), errors.Is(err, service.ErrStaleWrite):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as a dto.ErrorResponse. Server-side failures are logged
// at error level, client mistakes at warn.
func Fail(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("method", ctx.Request.Method).
		Str("path", ctx.FullPath()).
		Int("status", status).
		Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Error: message, Details: []string{err.Error()}})
}

// BadRequest reports a request body or query that could not be bound.
func BadRequest(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request", Details: []string{err.Error()}})
}
