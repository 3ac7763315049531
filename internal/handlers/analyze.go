package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type analyzeRequest struct {
	Description string `json:"description"`
}

type followUpRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnalyzeFood estimates nutrition for a free-text food description
func (h *Handler) AnalyzeFood(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Description == "" {
		return Error(c, fiber.StatusBadRequest, "description is required")
	}

	analysis, err := h.analysis.AnalyzeFood(c.Context(), req.Description)
	if err != nil {
		return Error(c, fiber.StatusBadGateway, "failed to analyze food")
	}

	return Success(c, analysis)
}

// FollowUp refines an analysis with the answer to a clarifying question
func (h *Handler) FollowUp(c *fiber.Ctx) error {
	var req followUpRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" || req.Answer == "" {
		return Error(c, fiber.StatusBadRequest, "question and answer are required")
	}

	analysis, err := h.analysis.HandleFollowUp(c.Context(), req.Question, req.Answer)
	if err != nil {
		return Error(c, fiber.StatusBadGateway, "failed to process follow-up question")
	}

	return Success(c, analysis)
}
