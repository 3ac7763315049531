package database

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// GetUserList returns all known usernames.
func (db *DB) GetUserList(ctx context.Context) ([]string, error) {
	var users []string
	err := db.getJSON(ctx, keyUsers, &users)
	if errors.Is(err, ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AddUser registers a username. Adding an existing user is a no-op.
func (db *DB) AddUser(ctx context.Context, username string) error {
	users, err := db.GetUserList(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u == username {
			return nil
		}
	}
	users = append(users, username)
	return db.setJSON(ctx, keyUsers, users)
}

// DeleteUser removes a user and every document they own. If the deleted user
// was the current user, the current-user selection is cleared.
func (db *DB) DeleteUser(ctx context.Context, username string) error {
	users, err := db.GetUserList(ctx)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(users))
	found := false
	for _, u := range users {
		if u == username {
			found = true
			continue
		}
		updated = append(updated, u)
	}
	if !found {
		return ErrUserNotFound
	}

	if err := db.setJSON(ctx, keyUsers, updated); err != nil {
		return err
	}

	for _, key := range []string{
		goalsKey(username),
		todayKey(username),
		historyKey(username),
		recentMealsKey(username),
	} {
		if err := db.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	current, err := db.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	if current == username {
		return db.store.Delete(ctx, keyCurrentUser)
	}
	return nil
}

// GetCurrentUser returns the selected username, or "" when none is set.
func (db *DB) GetCurrentUser(ctx context.Context) (string, error) {
	var current string
	err := db.getJSON(ctx, keyCurrentUser, &current)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return current, nil
}

// SetCurrentUser records the selected username; an empty name clears the
// selection.
func (db *DB) SetCurrentUser(ctx context.Context, username string) error {
	if username == "" {
		return db.store.Delete(ctx, keyCurrentUser)
	}
	return db.setJSON(ctx, keyCurrentUser, username)
}
