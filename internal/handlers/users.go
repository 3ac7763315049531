package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalexander1088-svg/CalTrak/internal/database"
)

type userRequest struct {
	Username string `json:"username"`
}

// ListUsers returns all known usernames
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.db.GetUserList(c.Context())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list users")
	}

	return Success(c, users)
}

// CreateUser registers a new username
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" {
		return Error(c, fiber.StatusBadRequest, "username is required")
	}

	if err := h.db.AddUser(c.Context(), req.Username); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    req.Username,
	})
}

// DeleteUser removes a user and all of their data
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := h.db.DeleteUser(c.Context(), username); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return Error(c, fiber.StatusNotFound, "user not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to delete user")
	}

	return Success(c, username)
}

// GetCurrentUser returns the selected username, or null when none is set
func (h *Handler) GetCurrentUser(c *fiber.Ctx) error {
	current, err := h.db.GetCurrentUser(c.Context())
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load current user")
	}

	if current == "" {
		return Success(c, nil)
	}
	return Success(c, current)
}

// SetCurrentUser records the selected username; an empty name clears it
func (h *Handler) SetCurrentUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.SetCurrentUser(c.Context(), req.Username); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to set current user")
	}

	return Success(c, req.Username)
}
