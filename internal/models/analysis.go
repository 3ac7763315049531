package models

// AnalysisSource tags how an analysis was produced.
type AnalysisSource string

const (
	// SourceParsed marks an analysis parsed from the model's JSON reply.
	SourceParsed AnalysisSource = "parsed"
	// SourceFallback marks the fixed placeholder estimate used when the
	// model's reply could not be parsed.
	SourceFallback AnalysisSource = "fallback"
)

// AnalysisItem is one estimated food item. The quantity is a human-readable
// label with a leading numeric token followed by a unit word ("2 cups").
type AnalysisItem struct {
	Name        string  `json:"name"`
	Quantity    string  `json:"quantity"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Assumptions string  `json:"assumptions,omitempty"`
}

// Analysis is the nutrition estimate for a described meal. The JSON field
// names match the contract the model is prompted to produce.
type Analysis struct {
	Items             []AnalysisItem `json:"items"`
	FollowUpQuestions []string       `json:"followUpQuestions"`
	TotalCalories     float64        `json:"totalCalories"`
	TotalProtein      float64        `json:"totalProtein"`
	TotalCarbs        float64        `json:"totalCarbs"`
	TotalFat          float64        `json:"totalFat"`
	Source            AnalysisSource `json:"source,omitempty"`
}
