package database

import (
	"context"
	"errors"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

// GetUserHistory returns the user's archived days, oldest first.
func (db *DB) GetUserHistory(ctx context.Context, username string) ([]models.DayLedger, error) {
	var history []models.DayLedger
	err := db.getJSON(ctx, historyKey(username), &history)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.DayLedger{}, nil
	}
	if err != nil {
		return nil, err
	}
	return history, nil
}

// AddToHistory appends a completed day to the archive. Rollover never calls
// this; archiving is the caller's explicit choice before the day turns.
func (db *DB) AddToHistory(ctx context.Context, username string, day *models.DayLedger) error {
	history, err := db.GetUserHistory(ctx, username)
	if err != nil {
		return err
	}
	history = append(history, *day)
	return db.setJSON(ctx, historyKey(username), history)
}
