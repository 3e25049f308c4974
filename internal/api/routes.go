package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists the handlers the console exposes.
type ServerInterface interface {
	PostProjectsCreate(c *fiber.Ctx) error
	PostProjectsDelete(c *fiber.Ctx) error
	PostProjectsAddContract(c *fiber.Ctx) error
	PostProjectsRemoveContract(c *fiber.Ctx) error
	PostProjectsGetContracts(c *fiber.Ctx) error
	PostProjectsList(c *fiber.Ctx) error
	PostProjectsGetEnvironments(c *fiber.Ctx) error
	PostProjectsGetKeys(c *fiber.Ctx) error
	PostProjectsRotateKey(c *fiber.Ctx) error
	PostUsersProvision(c *fiber.Ctx) error
}

// RegisterHandlers wires all console routes onto the router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Post("/projects/create", si.PostProjectsCreate)
	router.Post("/projects/delete", si.PostProjectsDelete)
	router.Post("/projects/addContract", si.PostProjectsAddContract)
	router.Post("/projects/removeContract", si.PostProjectsRemoveContract)
	router.Post("/projects/getContracts", si.PostProjectsGetContracts)
	router.Post("/projects/list", si.PostProjectsList)
	router.Post("/projects/getEnvironments", si.PostProjectsGetEnvironments)
	router.Post("/projects/getKeys", si.PostProjectsGetKeys)
	router.Post("/projects/rotateKey", si.PostProjectsRotateKey)
	router.Post("/users/provision", si.PostUsersProvision)
}
