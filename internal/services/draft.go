package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

var ErrItemIndexOutOfRange = errors.New("item index out of range")

// AdjustQuantity steps one draft item's serving multiplier by delta (±1 per
// tap) and recomputes its nutrients from the unscaled baseline. The
// multiplier never drops below one serving. The input slice is not mutated;
// the updated copy is returned.
func AdjustQuantity(items []models.MealItem, index, delta int) ([]models.MealItem, error) {
	if index < 0 || index >= len(items) {
		return items, ErrItemIndexOutOfRange
	}

	updated := make([]models.MealItem, len(items))
	copy(updated, items)

	item := updated[index]
	multiplier := item.Multiplier + delta
	if multiplier < 1 {
		multiplier = 1
	}
	// Labels are always rebuilt from the untouched baseline label, never from
	// a previously rebuilt one.
	if item.OriginalQuantity == "" {
		item.OriginalQuantity = item.Quantity
	}
	item.Multiplier = multiplier
	item.Nutrients = scaleNutrients(item.OriginalNutrients, multiplier)
	item.Quantity = rebuildQuantityLabel(item.OriginalQuantity, multiplier)
	updated[index] = item

	return updated, nil
}

// RemoveItem returns the draft items without the entry at index. Remaining
// items keep their identity and order.
func RemoveItem(items []models.MealItem, index int) ([]models.MealItem, error) {
	if index < 0 || index >= len(items) {
		return items, ErrItemIndexOutOfRange
	}
	updated := make([]models.MealItem, 0, len(items)-1)
	updated = append(updated, items[:index]...)
	updated = append(updated, items[index+1:]...)
	return updated, nil
}

// CalculateTotals sums the item nutrients element-wise. Pure: applying it
// twice to the same items yields the same result. No rounding happens here;
// items are already rounded and display formatting is the caller's concern.
func CalculateTotals(items []models.MealItem) models.NutrientAmounts {
	var totals models.NutrientAmounts
	for _, item := range items {
		totals = totals.Add(item.Nutrients)
	}
	return totals
}

// DraftFromAnalysis seeds an editable draft from an analysis result. Every
// item starts at one serving with the estimate as its immutable baseline.
func DraftFromAnalysis(analysis *models.Analysis) *models.MealDraft {
	items := make([]models.MealItem, 0, len(analysis.Items))
	for _, a := range analysis.Items {
		nutrients := models.NutrientAmounts{
			Calories: a.Calories,
			Protein:  a.Protein,
			Carbs:    a.Carbs,
			Fat:      a.Fat,
		}
		items = append(items, models.MealItem{
			Name:              a.Name,
			Quantity:          a.Quantity,
			OriginalQuantity:  a.Quantity,
			Nutrients:         nutrients,
			OriginalNutrients: nutrients,
			Multiplier:        1,
			Assumptions:       a.Assumptions,
		})
	}
	return &models.MealDraft{
		Items:  items,
		Totals: CalculateTotals(items),
	}
}

// scaleNutrients applies the item-level rounding rules: calories to the
// nearest integer, the gram macros to one decimal place.
func scaleNutrients(base models.NutrientAmounts, multiplier int) models.NutrientAmounts {
	m := float64(multiplier)
	return models.NutrientAmounts{
		Calories: math.Round(base.Calories * m),
		Protein:  roundTenth(base.Protein * m),
		Carbs:    roundTenth(base.Carbs * m),
		Fat:      roundTenth(base.Fat * m),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// rebuildQuantityLabel extracts the unit word from a baseline label like
// "1 cup (245g)" by stripping the leading numeric token, then rebuilds the
// label for the new serving count ("2 cups"). Units that already end in "s"
// ("glass") are left alone. A label with no recognizable unit falls back to
// "serving".
func rebuildQuantityLabel(label string, multiplier int) string {
	fields := strings.Fields(label)

	unit := "serving"
	if len(fields) > 0 {
		if _, err := strconv.ParseFloat(fields[0], 64); err == nil {
			if len(fields) > 1 {
				unit = fields[1]
			}
		} else {
			unit = fields[0]
		}
	}

	if multiplier > 1 && !strings.HasSuffix(unit, "s") {
		unit += "s"
	}

	return fmt.Sprintf("%d %s", multiplier, unit)
}
