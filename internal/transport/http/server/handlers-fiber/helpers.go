package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/entities"
	"github.com/gofiber/fiber/v2"
)

// writeError is the single place interpreting domain error codes into
// transport semantics. Uncoded errors fall through to a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNALERROR
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = api.PERMISSIONDENIED
		msg = "no permission for target project"
	case errors.Is(err, entities.ErrBadProject):
		status = http.StatusBadRequest
		code = api.BADPROJECT
		msg = "project missing or not active"
	case errors.Is(err, entities.ErrBadEnvironment):
		status = http.StatusBadRequest
		code = api.BADENVIRONMENT
		msg = "environment missing or not active"
	case errors.Is(err, entities.ErrBadContract):
		status = http.StatusBadRequest
		code = api.BADCONTRACT
		msg = "contract missing or not active"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
