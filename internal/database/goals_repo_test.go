package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

func TestSaveAndGetGoals(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	goals := &models.Goals{
		Calories: 2200,
		Protein:  160,
		Carbs:    220,
		Fat:      70,
		TrackedNutrients: map[string]bool{
			"calories": true,
			"protein":  true,
		},
	}
	if err := db.SaveUserGoals(ctx, "alice", goals); err != nil {
		t.Fatalf("SaveUserGoals: %v", err)
	}

	loaded, err := db.GetUserGoals(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserGoals: %v", err)
	}
	if loaded.Calories != 2200 || loaded.Protein != 160 {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.TrackedNutrients["protein"] || loaded.TrackedNutrients["carbs"] {
		t.Errorf("tracked = %v", loaded.TrackedNutrients)
	}
}

func TestGetGoalsNotFound(t *testing.T) {
	db := New(NewMemoryStore())

	if _, err := db.GetUserGoals(context.Background(), "nobody"); !errors.Is(err, ErrGoalsNotFound) {
		t.Errorf("err = %v, want ErrGoalsNotFound", err)
	}
}

func TestSaveGoalsRequiresCaloriesTracked(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	goals := &models.Goals{
		Protein: 150,
		TrackedNutrients: map[string]bool{
			"protein": true,
		},
	}
	err := db.SaveUserGoals(ctx, "alice", goals)
	if !errors.Is(err, ErrCaloriesNotTracked) {
		t.Fatalf("err = %v, want ErrCaloriesNotTracked", err)
	}
	if err.Error() != "Calories must be tracked" {
		t.Errorf("message = %q", err.Error())
	}

	// The rejected save must not leave partial state.
	if _, err := db.GetUserGoals(ctx, "alice"); !errors.Is(err, ErrGoalsNotFound) {
		t.Errorf("goals were stored despite validation failure")
	}
}

func TestSaveGoalsRequiresAtLeastOneTarget(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	goals := &models.Goals{
		TrackedNutrients: map[string]bool{
			"calories": true,
			"protein":  true,
		},
	}
	err := db.SaveUserGoals(ctx, "alice", goals)
	if !errors.Is(err, ErrNoGoalSet) {
		t.Fatalf("err = %v, want ErrNoGoalSet", err)
	}
	if err.Error() != "Please set at least one goal" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestSaveGoalsRejectedUpdateKeepsPrevious(t *testing.T) {
	db := New(NewMemoryStore())
	ctx := context.Background()

	good := &models.Goals{
		Calories:         2000,
		TrackedNutrients: map[string]bool{"calories": true},
	}
	if err := db.SaveUserGoals(ctx, "alice", good); err != nil {
		t.Fatalf("SaveUserGoals: %v", err)
	}

	bad := &models.Goals{
		Calories:         2500,
		TrackedNutrients: map[string]bool{"protein": true},
	}
	if err := db.SaveUserGoals(ctx, "alice", bad); !errors.Is(err, ErrCaloriesNotTracked) {
		t.Fatalf("err = %v, want ErrCaloriesNotTracked", err)
	}

	loaded, err := db.GetUserGoals(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserGoals: %v", err)
	}
	if loaded.Calories != 2000 {
		t.Errorf("calories = %v, want the previous 2000", loaded.Calories)
	}
}
