package models

// Goals holds a user's daily nutrition targets. TrackedNutrients flags which
// targets are active; calories must always be tracked.
type Goals struct {
	Calories         float64         `json:"calories"`
	Protein          float64         `json:"protein"`
	Carbs            float64         `json:"carbs"`
	Fat              float64         `json:"fat"`
	TrackedNutrients map[string]bool `json:"tracked_nutrients"`
}

// HasTrackedTarget reports whether at least one tracked nutrient has a
// positive target.
func (g *Goals) HasTrackedTarget() bool {
	targets := map[string]float64{
		"calories": g.Calories,
		"protein":  g.Protein,
		"carbs":    g.Carbs,
		"fat":      g.Fat,
	}
	for nutrient, value := range targets {
		if g.TrackedNutrients[nutrient] && value > 0 {
			return true
		}
	}
	return false
}

// UserInfo is the input to AI goal recommendations.
type UserInfo struct {
	Gender          string `json:"gender"`
	Weight          string `json:"weight"`
	ActivityLevel   string `json:"activity_level"`
	PrimaryGoal     string `json:"primary_goal"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}

// GoalRecommendation is the model's suggested daily targets, with its
// per-nutrient reasoning and practical tips.
type GoalRecommendation struct {
	Calories  float64           `json:"calories"`
	Protein   float64           `json:"protein"`
	Carbs     float64           `json:"carbs"`
	Fat       float64           `json:"fat"`
	Reasoning map[string]string `json:"reasoning"`
	Tips      []string          `json:"tips"`
}
