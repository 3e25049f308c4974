package handlers_fiber

import (
	"net/http"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/mapper"
	"github.com/near/pagoda-console-sub002/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostProjectsAddContract registers a contract under an environment.
func (h *Handler) PostProjectsAddContract(c *fiber.Ctx) error {
	var body api.AddContractRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	contract, err := h.uc.AddContract(c.Context(), middleware.UserID(c), body.EnvironmentID, body.Address)
	if err != nil {
		h.log.Errorw("failed to add contract", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIContract(*contract))
}

// PostProjectsRemoveContract soft-deletes a contract.
func (h *Handler) PostProjectsRemoveContract(c *fiber.Ctx) error {
	var body api.RemoveContractRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.RemoveContract(c.Context(), middleware.UserID(c), body.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostProjectsGetContracts returns active contracts of a project.
func (h *Handler) PostProjectsGetContracts(c *fiber.Ctx) error {
	var body api.ProjectIDRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	contracts, err := h.uc.GetContracts(c.Context(), middleware.UserID(c), body.ProjectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIContractList(contracts))
}
