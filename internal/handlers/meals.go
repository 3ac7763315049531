package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalexander1088-svg/CalTrak/internal/database"
	"github.com/aalexander1088-svg/CalTrak/internal/models"
	"github.com/aalexander1088-svg/CalTrak/internal/services"
)

// GetToday returns the user's ledger for the current date, rolling it over
// if the stored date is stale
func (h *Handler) GetToday(c *fiber.Ctx) error {
	username := c.Params("username")

	ledger, err := h.db.GetTodayData(c.Context(), username)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load today's data")
	}

	return Success(c, ledger)
}

// AddMeal confirms a meal draft into today's ledger
func (h *Handler) AddMeal(c *fiber.Ctx) error {
	username := c.Params("username")

	var draft models.MealDraft
	if err := c.BodyParser(&draft); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(draft.Items) == 0 {
		return Error(c, fiber.StatusBadRequest, "meal must contain at least one item")
	}

	// Clients may omit totals; recompute from the items either way so stored
	// totals always match their contents.
	draft.Totals = services.CalculateTotals(draft.Items)

	meal, err := h.db.AddMeal(c.Context(), username, &draft)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to add meal")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    meal,
	})
}

// DeleteMeal removes a meal from today's ledger, keeping it available for
// undo
func (h *Handler) DeleteMeal(c *fiber.Ctx) error {
	username := c.Params("username")
	mealID := c.Params("mealId")

	removed, err := h.undo.Delete(c.Context(), username, mealID)
	if err != nil {
		if errors.Is(err, database.ErrMealNotFound) {
			return Error(c, fiber.StatusNotFound, "meal not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to delete meal")
	}

	return Success(c, removed)
}

// UndoDelete restores the most recently deleted meal
func (h *Handler) UndoDelete(c *fiber.Ctx) error {
	username := c.Params("username")

	restored, err := h.undo.Undo(c.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNothingToUndo) {
			return Error(c, fiber.StatusNotFound, "nothing to undo")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to restore meal")
	}

	return Success(c, restored)
}

// GetRecentMeals returns the user's quick-add cache
func (h *Handler) GetRecentMeals(c *fiber.Ctx) error {
	username := c.Params("username")

	recents, err := h.db.GetRecentMeals(c.Context(), username)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load recent meals")
	}

	return Success(c, recents)
}

// RemoveRecentMeal drops one entry from the quick-add cache
func (h *Handler) RemoveRecentMeal(c *fiber.Ctx) error {
	username := c.Params("username")
	mealID := c.Params("mealId")

	recents, err := h.db.RemoveRecentMeal(c.Context(), username, mealID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to remove recent meal")
	}

	return Success(c, recents)
}

// GetHistory returns the user's archived days
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	username := c.Params("username")

	history, err := h.db.GetUserHistory(c.Context(), username)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load history")
	}

	return Success(c, history)
}

// ArchiveDay appends today's ledger to the user's history
func (h *Handler) ArchiveDay(c *fiber.Ctx) error {
	username := c.Params("username")

	ledger, err := h.db.GetTodayData(c.Context(), username)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load today's data")
	}

	if err := h.db.AddToHistory(c.Context(), username, ledger); err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to archive day")
	}

	return Success(c, ledger)
}
