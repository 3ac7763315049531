package database

import (
	"context"
	"errors"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

var (
	ErrGoalsNotFound = errors.New("goals not found")

	// Validation errors carry the exact messages surfaced to the user.
	ErrCaloriesNotTracked = errors.New("Calories must be tracked")
	ErrNoGoalSet          = errors.New("Please set at least one goal")
)

// GetUserGoals loads the user's goals.
func (db *DB) GetUserGoals(ctx context.Context, username string) (*models.Goals, error) {
	var goals models.Goals
	err := db.getJSON(ctx, goalsKey(username), &goals)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrGoalsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

// SaveUserGoals validates and stores the user's goals. Rejected goals leave
// stored state untouched: calories must be tracked, and at least one tracked
// nutrient must have a positive target.
func (db *DB) SaveUserGoals(ctx context.Context, username string, goals *models.Goals) error {
	if !goals.TrackedNutrients["calories"] {
		return ErrCaloriesNotTracked
	}
	if !goals.HasTrackedTarget() {
		return ErrNoGoalSet
	}
	return db.setJSON(ctx, goalsKey(username), goals)
}
