package database

import (
	"context"
	"errors"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

// recentMealLimit bounds the quick-add cache.
const recentMealLimit = 10

// GetRecentMeals returns the user's quick-add cache, most recent first. An
// absent document is an empty cache, not an error.
func (db *DB) GetRecentMeals(ctx context.Context, username string) ([]models.RecentMeal, error) {
	var recents []models.RecentMeal
	err := db.getJSON(ctx, recentMealsKey(username), &recents)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.RecentMeal{}, nil
	}
	if err != nil {
		return nil, err
	}
	return recents, nil
}

// addRecentMeal pushes a summary to the front of the cache, dropping any
// previous entry with the same id and trimming to the cap.
func (db *DB) addRecentMeal(ctx context.Context, username string, summary models.RecentMeal) error {
	recents, err := db.GetRecentMeals(ctx, username)
	if err != nil {
		return err
	}

	updated := make([]models.RecentMeal, 0, len(recents)+1)
	updated = append(updated, summary)
	for _, meal := range recents {
		if meal.ID != summary.ID {
			updated = append(updated, meal)
		}
	}
	if len(updated) > recentMealLimit {
		updated = updated[:recentMealLimit]
	}

	return db.setJSON(ctx, recentMealsKey(username), updated)
}

// RemoveRecentMeal drops one entry from the cache by id and returns the
// updated cache. Removing an id that is not cached is a no-op.
func (db *DB) RemoveRecentMeal(ctx context.Context, username, mealID string) ([]models.RecentMeal, error) {
	recents, err := db.GetRecentMeals(ctx, username)
	if err != nil {
		return nil, err
	}

	updated := make([]models.RecentMeal, 0, len(recents))
	for _, meal := range recents {
		if meal.ID != mealID {
			updated = append(updated, meal)
		}
	}

	if err := db.setJSON(ctx, recentMealsKey(username), updated); err != nil {
		return nil, err
	}
	return updated, nil
}
