package http

import (
	"errors"
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto an HTTP status and writes the
// uniform error body. The error message is passed through as-is: handlers
// and the domain already keep their messages caller-safe.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrOrderAlreadyPaid),
		errors.Is(err, commands.ErrUsernameIsTaken):
		return http.StatusConflict
	case errors.Is(err, commands.ErrCancellationNotAllowed),
		errors.Is(err, commands.ErrAssignmentNotAllowed),
		errors.Is(err, commands.ErrFulfillerRoleMismatch):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrGatewayUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrSignatureInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrSessionIDIsRequired),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrDeltaIsZero),
		errors.Is(err, commands.ErrQuantityIsNegative),
		errors.Is(err, commands.ErrUsernameIsRequired),
		errors.Is(err, commands.ErrGatewayOrderIDIsRequired),
		errors.Is(err, commands.ErrPaymentIDIsRequired),
		errors.Is(err, commands.ErrSignatureIsRequired),
		errors.Is(err, queries.ErrCartSessionIDIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
