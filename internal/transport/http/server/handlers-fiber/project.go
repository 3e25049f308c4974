package handlers_fiber

import (
	"net/http"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/internal/entities"
	"github.com/near/pagoda-console-sub002/internal/mapper"
	"github.com/near/pagoda-console-sub002/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostProjectsCreate creates a project owned by the caller's team.
func (h *Handler) PostProjectsCreate(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	proj, err := h.uc.CreateProject(c.Context(), middleware.UserID(c), body.Name, entities.Net(body.Net))
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIProject(*proj))
}

// PostProjectsDelete soft-deletes a project.
func (h *Handler) PostProjectsDelete(c *fiber.Ctx) error {
	var body api.DeleteProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	if err := h.uc.DeleteProject(c.Context(), middleware.UserID(c), body.ID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostProjectsList returns active projects visible to the caller.
func (h *Handler) PostProjectsList(c *fiber.Ctx) error {
	projects, err := h.uc.ListProjects(c.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProjectList(projects))
}

// PostProjectsGetEnvironments returns active environments of a project.
func (h *Handler) PostProjectsGetEnvironments(c *fiber.Ctx) error {
	var body api.ProjectIDRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	envs, err := h.uc.GetEnvironments(c.Context(), middleware.UserID(c), body.ProjectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEnvironmentList(envs))
}
