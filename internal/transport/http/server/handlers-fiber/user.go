package handlers_fiber

import (
	"net/http"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/mapper"
	"github.com/near/pagoda-console-sub002/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostUsersProvision upserts the caller and their personal team.
func (h *Handler) PostUsersProvision(c *fiber.Ctx) error {
	usr, team, err := h.uc.ProvisionUser(c.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to provision user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.ProvisionResponse{
		User: mapper.ToAPIUser(*usr),
		Team: mapper.ToAPITeam(*team),
	})
}
