package services

import (
	"context"
	"errors"
	"sync"

	"github.com/aalexander1088-svg/CalTrak/internal/database"
	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// UndoService coordinates meal deletion with a one-slot undo buffer per
// user. Each delete overwrites the user's slot, so only the most recent
// deletion can be restored. Slots live in memory only; a restart forfeits
// pending undos.
type UndoService struct {
	db *database.DB

	mu    sync.Mutex
	slots map[string]*models.Meal
}

func NewUndoService(db *database.DB) *UndoService {
	return &UndoService{
		db:    db,
		slots: make(map[string]*models.Meal),
	}
}

// Delete removes a meal from the user's day and parks it in the undo slot.
// The removed meal is returned for the response body.
func (s *UndoService) Delete(ctx context.Context, username, mealID string) (*models.Meal, error) {
	removed, err := s.db.RemoveMeal(ctx, username, mealID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.slots[username] = removed
	s.mu.Unlock()

	return removed, nil
}

// Undo re-submits the most recently deleted meal. The restored meal gets a
// fresh id and timestamp; its items and totals are preserved. The slot is
// cleared only after the restore succeeds, so a failed persist can be
// retried.
func (s *UndoService) Undo(ctx context.Context, username string) (*models.Meal, error) {
	s.mu.Lock()
	pending := s.slots[username]
	s.mu.Unlock()

	if pending == nil {
		return nil, ErrNothingToUndo
	}

	restored, err := s.db.AddMeal(ctx, username, &models.MealDraft{
		Items:  pending.Items,
		Totals: pending.Totals,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.slots[username] == pending {
		delete(s.slots, username)
	}
	s.mu.Unlock()

	return restored, nil
}
