package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
	"github.com/aalexander1088-svg/CalTrak/internal/services"
)

type adjustRequest struct {
	Items []models.MealItem `json:"items"`
	Index int               `json:"index"`
	Delta int               `json:"delta"`
}

type removeItemRequest struct {
	Items []models.MealItem `json:"items"`
	Index int               `json:"index"`
}

type draftResponse struct {
	Items  []models.MealItem      `json:"items"`
	Totals models.NutrientAmounts `json:"totals"`
}

// AdjustQuantity steps one draft item's serving count and returns the
// recomputed draft
func (h *Handler) AdjustQuantity(c *fiber.Ctx) error {
	var req adjustRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	items, err := services.AdjustQuantity(req.Items, req.Index, req.Delta)
	if err != nil {
		if errors.Is(err, services.ErrItemIndexOutOfRange) {
			return Error(c, fiber.StatusBadRequest, "item index out of range")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to adjust quantity")
	}

	return Success(c, draftResponse{
		Items:  items,
		Totals: services.CalculateTotals(items),
	})
}

// RemoveDraftItem drops one item from the draft and returns the recomputed
// draft
func (h *Handler) RemoveDraftItem(c *fiber.Ctx) error {
	var req removeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	items, err := services.RemoveItem(req.Items, req.Index)
	if err != nil {
		if errors.Is(err, services.ErrItemIndexOutOfRange) {
			return Error(c, fiber.StatusBadRequest, "item index out of range")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to remove item")
	}

	return Success(c, draftResponse{
		Items:  items,
		Totals: services.CalculateTotals(items),
	})
}
