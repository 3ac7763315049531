package models

import (
	"time"
)

// MealItem is one food entry in a meal. OriginalNutrients and
// OriginalQuantity are the immutable one-serving baseline from the analysis;
// Nutrients is always OriginalNutrients scaled by Multiplier, with calories
// rounded to an integer and the gram macros to one decimal place, and
// Quantity is a display label rebuilt from OriginalQuantity at the current
// multiplier.
type MealItem struct {
	Name              string          `json:"name"`
	Quantity          string          `json:"quantity"`
	OriginalQuantity  string          `json:"original_quantity,omitempty"`
	Nutrients         NutrientAmounts `json:"nutrients"`
	OriginalNutrients NutrientAmounts `json:"original_nutrients"`
	Multiplier        int             `json:"multiplier"`
	Assumptions       string          `json:"assumptions,omitempty"`
}

// Meal is a confirmed entry in the daily ledger. Immutable once created,
// except for removal.
type Meal struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Items     []MealItem      `json:"items"`
	Totals    NutrientAmounts `json:"totals"`
}

// MealDraft is an unconfirmed meal being edited by the user. It carries no
// identity; one is minted when the draft is confirmed into the ledger.
type MealDraft struct {
	Name   string          `json:"name,omitempty"`
	Items  []MealItem      `json:"items"`
	Totals NutrientAmounts `json:"totals"`
}

// DayLedger is one user's record for a single local calendar date. Totals are
// maintained incrementally on every add and remove; only rollover rebuilds
// them, by zeroing the whole ledger.
type DayLedger struct {
	Date   string          `json:"date"`
	Meals  []Meal          `json:"meals"`
	Totals NutrientAmounts `json:"totals"`
}

// RecentMeal is the simplified summary kept in the quick-add cache.
type RecentMeal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Items         []MealItem `json:"items"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
	Timestamp     time.Time  `json:"timestamp"`
}
