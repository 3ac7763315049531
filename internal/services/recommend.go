package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

const goalRecommendationPrompt = `You are a nutrition expert. Based on the user's information, provide personalized daily nutrition goals.

User Information:
- Gender: {gender}
- Weight: {weight} lbs
- Activity Level: {activityLevel}
- Primary Goal: {primaryGoal}
- Additional Notes: {additionalNotes}

Please provide recommendations in this exact JSON format:
{
  "calories": number,
  "protein": number,
  "carbs": number,
  "fat": number,
  "reasoning": {
    "calories": "explanation for calorie target",
    "protein": "explanation for protein target (e.g., 1g per lb body weight for muscle gain)",
    "carbs": "explanation for carb target",
    "fat": "explanation for fat target"
  },
  "tips": ["tip1", "tip2", "tip3"]
}

Guidelines:
- For muscle gain: ~1g protein per lb body weight, slight calorie surplus
- For weight loss: moderate calorie deficit (300-500 below maintenance), adequate protein
- For maintenance: balanced macros, maintenance calories
- Consider activity level in calorie calculations
- Consider gender differences in metabolism and nutritional needs
- Provide practical, achievable targets`

// RecommendGoals asks the model for personalized daily targets. When the
// model's output cannot be parsed, a rule-of-thumb calculation from weight
// and activity level stands in so the user always gets a starting point.
func (s *AnalysisService) RecommendGoals(ctx context.Context, info *models.UserInfo) (*models.GoalRecommendation, error) {
	notes := info.AdditionalNotes
	if notes == "" {
		notes = "None"
	}
	prompt := strings.NewReplacer(
		"{gender}", info.Gender,
		"{weight}", info.Weight,
		"{activityLevel}", info.ActivityLevel,
		"{primaryGoal}", info.PrimaryGoal,
		"{additionalNotes}", notes,
	).Replace(goalRecommendationPrompt)

	content, err := s.complete(ctx, prompt, 800, 0.3)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		var rec models.GoalRecommendation
		if jsonErr := json.Unmarshal([]byte(content[start:end+1]), &rec); jsonErr == nil {
			return &rec, nil
		}
	}

	return fallbackRecommendation(info), nil
}

// fallbackRecommendation mirrors the classic 15 kcal/lb baseline with a
// surplus or deficit applied for the stated goal, 40% of calories from carbs
// and 25% from fat.
func fallbackRecommendation(info *models.UserInfo) *models.GoalRecommendation {
	weight, err := strconv.Atoi(info.Weight)
	if err != nil || weight <= 0 {
		weight = 150
	}
	activity := info.ActivityLevel
	if activity == "" {
		activity = "moderate"
	}

	calories := float64(weight) * 15
	switch activity {
	case "low":
		calories *= 0.9
	case "high":
		calories *= 1.2
	}

	switch info.PrimaryGoal {
	case "muscle_gain":
		calories += 300
	case "weight_loss":
		calories -= 400
	}

	protein := float64(weight)

	return &models.GoalRecommendation{
		Calories: math.Round(calories),
		Protein:  math.Round(protein),
		Carbs:    math.Round(calories * 0.4 / 4),
		Fat:      math.Round(calories * 0.25 / 9),
		Reasoning: map[string]string{
			"calories": fmt.Sprintf("Based on your weight (%dlbs) and %s activity level", weight, activity),
			"protein":  fmt.Sprintf("%.0fg protein (1g per lb body weight) for muscle support", protein),
			"carbs":    "Balanced carb intake for energy",
			"fat":      "Essential fats for hormone production",
		},
		Tips: []string{
			"Track your progress weekly",
			"Adjust goals based on results",
			"Stay consistent with your targets",
		},
	}
}
