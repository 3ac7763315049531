package models

// NutrientAmounts holds the four tracked macros for an item, a meal, or a
// whole day. Fields absent from a JSON document decode to zero, which is also
// what aggregation treats them as.
type NutrientAmounts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of two amounts.
func (n NutrientAmounts) Add(other NutrientAmounts) NutrientAmounts {
	return NutrientAmounts{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// Sub returns the element-wise difference, used when a meal's contribution is
// reversed out of a ledger's running totals.
func (n NutrientAmounts) Sub(other NutrientAmounts) NutrientAmounts {
	return NutrientAmounts{
		Calories: n.Calories - other.Calories,
		Protein:  n.Protein - other.Protein,
		Carbs:    n.Carbs - other.Carbs,
		Fat:      n.Fat - other.Fat,
	}
}
