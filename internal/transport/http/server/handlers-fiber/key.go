package handlers_fiber

import (
	"net/http"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/mapper"
	"github.com/near/pagoda-console-sub002/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostProjectsGetKeys returns active API keys of a project.
func (h *Handler) PostProjectsGetKeys(c *fiber.Ctx) error {
	var body api.ProjectIDRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	keys, err := h.uc.GetKeys(c.Context(), middleware.UserID(c), body.ProjectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIKeyList(keys))
}

// PostProjectsRotateKey revokes the project's keys and mints a new one.
func (h *Handler) PostProjectsRotateKey(c *fiber.Ctx) error {
	var body api.ProjectIDRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	key, err := h.uc.RotateKey(c.Context(), middleware.UserID(c), body.ProjectID)
	if err != nil {
		h.log.Errorw("failed to rotate key", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIKey(*key))
}
