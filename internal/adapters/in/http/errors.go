package http

import (
	"errors"
	"net/http"

	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body for every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// mapDomainError translates application errors into HTTP responses.
// Order matters: ErrUnauthorizedActor wraps ErrInvalidTransition and the
// typed parameter errors wrap the value sentinels, so the most specific
// match is checked first.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrUnauthorizedActor):
		return respond(ctx, http.StatusForbidden, err)
	case errors.Is(err, order.ErrDeliveryCodeMismatch):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, order.ErrMissingDeliveryInfo):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, order.ErrInvalidTransition):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, invoice.ErrInvoiceNotPending):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return internalError(ctx, "internal error")
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
