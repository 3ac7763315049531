package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

var ErrMealNotFound = errors.New("meal not found")

// GetTodayData returns the user's ledger for the current local date. A stored
// ledger with a stale date (or none at all) is replaced with a zeroed ledger
// dated today and persisted before returning; nothing is carried forward or
// archived by this call.
func (db *DB) GetTodayData(ctx context.Context, username string) (*models.DayLedger, error) {
	lock := db.userLock(username)
	lock.Lock()
	defer lock.Unlock()
	return db.todayLocked(ctx, username)
}

// todayLocked implements the rollover policy. Callers must hold the user's
// lock.
func (db *DB) todayLocked(ctx context.Context, username string) (*models.DayLedger, error) {
	today := db.now().Format("2006-01-02")

	var ledger models.DayLedger
	err := db.getJSON(ctx, todayKey(username), &ledger)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return nil, err
	}

	if errors.Is(err, ErrKeyNotFound) || ledger.Date != today {
		ledger = models.DayLedger{
			Date:  today,
			Meals: []models.Meal{},
		}
		if err := db.setJSON(ctx, todayKey(username), &ledger); err != nil {
			return nil, err
		}
	}

	return &ledger, nil
}

// AddMeal confirms a draft into today's ledger: it mints a time-derived id
// and timestamp, appends the meal, adds its totals to the running totals, and
// pushes a summary into the recent-meals cache. Returns the created meal.
func (db *DB) AddMeal(ctx context.Context, username string, draft *models.MealDraft) (*models.Meal, error) {
	lock := db.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := db.todayLocked(ctx, username)
	if err != nil {
		return nil, err
	}

	now := db.now()
	meal := models.Meal{
		ID:        fmt.Sprintf("meal_%d", now.UnixNano()),
		Timestamp: now,
		Items:     draft.Items,
		Totals:    draft.Totals,
	}

	name := draft.Name
	if name == "" {
		name = "Recent Meal"
	}
	summary := models.RecentMeal{
		ID:            meal.ID,
		Name:          name,
		Items:         meal.Items,
		TotalCalories: meal.Totals.Calories,
		TotalProtein:  meal.Totals.Protein,
		TotalCarbs:    meal.Totals.Carbs,
		TotalFat:      meal.Totals.Fat,
		Timestamp:     now,
	}

	// The cache is written before the ledger: a stray cache entry is
	// harmless, but an error return must never leave the meal durably
	// logged.
	if err := db.addRecentMeal(ctx, username, summary); err != nil {
		return nil, err
	}

	ledger.Meals = append(ledger.Meals, meal)
	ledger.Totals = ledger.Totals.Add(meal.Totals)

	if err := db.setJSON(ctx, todayKey(username), ledger); err != nil {
		return nil, err
	}

	return &meal, nil
}

// RemoveMeal deletes a meal from today's ledger by id, reversing its
// contribution to the running totals. Returns the removed meal so callers can
// retain it for undo. The recent-meals cache is not touched.
func (db *DB) RemoveMeal(ctx context.Context, username, mealID string) (*models.Meal, error) {
	lock := db.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := db.todayLocked(ctx, username)
	if err != nil {
		return nil, err
	}

	for i, meal := range ledger.Meals {
		if meal.ID != mealID {
			continue
		}

		ledger.Totals = ledger.Totals.Sub(meal.Totals)
		ledger.Meals = append(ledger.Meals[:i], ledger.Meals[i+1:]...)

		if err := db.setJSON(ctx, todayKey(username), ledger); err != nil {
			return nil, err
		}

		removed := meal
		return &removed, nil
	}

	return nil, ErrMealNotFound
}
