package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalexander1088-svg/CalTrak/internal/database"
	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

// GetGoals returns the user's nutrition goals
func (h *Handler) GetGoals(c *fiber.Ctx) error {
	username := c.Params("username")

	goals, err := h.db.GetUserGoals(c.Context(), username)
	if err != nil {
		if errors.Is(err, database.ErrGoalsNotFound) {
			return Error(c, fiber.StatusNotFound, "goals not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to load goals")
	}

	return Success(c, goals)
}

// SaveGoals validates and stores the user's nutrition goals
func (h *Handler) SaveGoals(c *fiber.Ctx) error {
	username := c.Params("username")

	var goals models.Goals
	if err := c.BodyParser(&goals); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.SaveUserGoals(c.Context(), username, &goals); err != nil {
		if errors.Is(err, database.ErrCaloriesNotTracked) || errors.Is(err, database.ErrNoGoalSet) {
			return Error(c, fiber.StatusBadRequest, err.Error())
		}
		return Error(c, fiber.StatusInternalServerError, "failed to save goals")
	}

	return Success(c, goals)
}

// RecommendGoals returns AI-suggested daily targets from the user's profile
func (h *Handler) RecommendGoals(c *fiber.Ctx) error {
	var info models.UserInfo
	if err := c.BodyParser(&info); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if info.Weight == "" || info.PrimaryGoal == "" {
		return Error(c, fiber.StatusBadRequest, "weight and primary goal are required")
	}

	rec, err := h.analysis.RecommendGoals(c.Context(), &info)
	if err != nil {
		return Error(c, fiber.StatusBadGateway, "failed to get recommendations")
	}

	return Success(c, rec)
}
