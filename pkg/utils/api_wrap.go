package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixitfast/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Kind:    kindForCode(code),
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps a service error onto the HTTP surface. Client-facing
// kinds stay stable; anything unrecognized is a plain 500 with no internals.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		respondKind(c, http.StatusBadRequest, "validation_error", clientMessage(err))
	case errors.Is(err, ErrUnauthorized):
		respondKind(c, http.StatusUnauthorized, "auth_error", clientMessage(err))
	case errors.Is(err, ErrPasswordChangeRequired):
		respondKind(c, http.StatusForbidden, "password_change_required", clientMessage(err))
	case errors.Is(err, ErrForbidden):
		respondKind(c, http.StatusForbidden, "forbidden", clientMessage(err))
	case errors.Is(err, ErrNotFound):
		respondKind(c, http.StatusNotFound, "not_found", clientMessage(err))
	case errors.Is(err, ErrConflict):
		respondKind(c, http.StatusConflict, "conflict", clientMessage(err))
	case errors.Is(err, ErrStoreUnavailable):
		logger.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("store unavailable")
		respondKind(c, http.StatusServiceUnavailable, "store_unavailable", "Service temporarily unavailable")
	default:
		logger.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("unhandled service error")
		respondKind(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func respondKind(c *gin.Context, code int, kind, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Kind:    kind,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// clientMessage strips the sentinel prefix so "validation failed: title too
// short" reads as "title too short" while a bare sentinel keeps its own text.
func clientMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func kindForCode(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "auth_error"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "store_unavailable"
	default:
		return "error"
	}
}
