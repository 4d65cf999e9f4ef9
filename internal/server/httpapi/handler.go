// Package httpapi exposes the user CRUD surface consumed by the console:
// GET/POST /users, PUT/DELETE /users/:id, with {data} success envelopes and
// {message} error envelopes.
package httpapi

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/users"
)

type Handler struct {
	repo   users.Repository
	logger logging.Logger
}

func NewHandler(repo users.Repository, logger logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger.With("component", "httpapi")}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/users", h.list)
	app.Post("/users", h.create)
	app.Put("/users/:id", h.update)
	app.Delete("/users/:id", h.delete)
}

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate mirrors the client-side rules so a direct API consumer gets the
// same answers as the console.
func (r userRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		return "email is required"
	}
	if !emailPattern.MatchString(r.Email) {
		return "email format is invalid"
	}
	return ""
}

func (h *Handler) list(c *fiber.Ctx) error {
	list, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.Error(c.Context(), "list users failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	if list == nil {
		list = []users.User{}
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(userRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	created, err := h.repo.Create(c.Context(), users.User{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		h.logger.Error(c.Context(), "create user failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *Handler) update(c *fiber.Ctx) error {
	payload := new(userRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	updated, err := h.repo.Update(c.Context(), users.User{
		ID:    c.Params("id"),
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		h.logger.Error(c.Context(), "update user failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}

	return c.JSON(fiber.Map{"data": updated})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	err := h.repo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		h.logger.Error(c.Context(), "delete user failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
