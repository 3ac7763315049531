package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

func TestAddUserIsIdempotent(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	if err := db.AddUser(ctx, "alice"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if err := db.AddUser(ctx, "alice"); err != nil {
		t.Fatalf("second AddUser: %v", err)
	}
	if err := db.AddUser(ctx, "bob"); err != nil {
		t.Fatalf("AddUser bob: %v", err)
	}

	users, err := db.GetUserList(ctx)
	if err != nil {
		t.Fatalf("GetUserList: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users = %v, want [alice bob]", users)
	}
}

func TestGetUserListEmpty(t *testing.T) {
	db := New(NewMemoryStore())

	users, err := db.GetUserList(context.Background())
	if err != nil {
		t.Fatalf("GetUserList: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("users = %v, want empty non-nil slice", users)
	}
}

func TestDeleteUserRemovesAllData(t *testing.T) {
	db := newTestDB(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if err := db.AddUser(ctx, "alice"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if err := db.SetCurrentUser(ctx, "alice"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	if _, err := db.AddMeal(ctx, "alice", testDraft(500, 30)); err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	goals := &models.Goals{Calories: 2000, TrackedNutrients: map[string]bool{"calories": true}}
	if err := db.SaveUserGoals(ctx, "alice", goals); err != nil {
		t.Fatalf("SaveUserGoals: %v", err)
	}

	if err := db.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	users, err := db.GetUserList(ctx)
	if err != nil {
		t.Fatalf("GetUserList: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("users = %v, want empty", users)
	}

	if _, err := db.GetUserGoals(ctx, "alice"); !errors.Is(err, ErrGoalsNotFound) {
		t.Errorf("goals survived deletion: %v", err)
	}
	recents, err := db.GetRecentMeals(ctx, "alice")
	if err != nil {
		t.Fatalf("GetRecentMeals: %v", err)
	}
	if len(recents) != 0 {
		t.Errorf("recent meals survived deletion: %v", recents)
	}

	current, err := db.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if current != "" {
		t.Errorf("current user = %q, want cleared", current)
	}
}

func TestDeleteUserKeepsOtherSelection(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	if err := db.AddUser(ctx, "alice"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if err := db.AddUser(ctx, "bob"); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if err := db.SetCurrentUser(ctx, "bob"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}

	if err := db.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	current, err := db.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if current != "bob" {
		t.Errorf("current user = %q, want bob", current)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	db := New(NewMemoryStore())

	if err := db.DeleteUser(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCurrentUserSelection(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	current, err := db.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if current != "" {
		t.Errorf("current = %q, want empty", current)
	}

	if err := db.SetCurrentUser(ctx, "alice"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	current, err = db.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if current != "alice" {
		t.Errorf("current = %q, want alice", current)
	}

	// An empty name clears the selection.
	if err := db.SetCurrentUser(ctx, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	current, err = db.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if current != "" {
		t.Errorf("current = %q, want cleared", current)
	}
}
