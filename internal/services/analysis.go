package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aalexander1088-svg/CalTrak/internal/models"
)

var (
	ErrMissingAPIKey   = errors.New("anthropic api key not configured")
	ErrAnalysisFailed  = errors.New("failed to analyze food")
	ErrInvalidResponse = errors.New("invalid response format")
)

const foodAnalysisPrompt = `You are a nutrition expert. Analyze the following food description and provide detailed nutritional information.

Instructions:
1. Identify all food items mentioned
2. Estimate quantities (use standard serving sizes if not specified)
3. Provide calories, protein (g), carbs (g), and fat (g) for each item
4. If quantities are ambiguous, ask specific follow-up questions
5. Format your response as JSON with this structure:
{
  "items": [
    {
      "name": "food item name",
      "quantity": "estimated quantity",
      "calories": number,
      "protein": number,
      "carbs": number,
      "fat": number,
      "assumptions": "any assumptions made"
    }
  ],
  "followUpQuestions": ["question1", "question2"],
  "totalCalories": number,
  "totalProtein": number,
  "totalCarbs": number,
  "totalFat": number
}

Food description: `

// AnalysisService estimates nutrition for free-text food descriptions using
// the Anthropic Messages API.
type AnalysisService struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewAnalysisService(apiKey, baseURL, model string) *AnalysisService {
	return &AnalysisService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// AnalyzeFood asks the model to break a description into items with nutrient
// estimates. A response that cannot be parsed as JSON degrades to a single
// rough estimate so the user can still log the meal; transport errors are not
// softened.
func (s *AnalysisService) AnalyzeFood(ctx context.Context, description string) (*models.Analysis, error) {
	content, err := s.complete(ctx, foodAnalysisPrompt+description, 1000, 0.1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	analysis, err := parseAnalysisJSON(content)
	if err != nil {
		return fallbackAnalysis(description), nil
	}
	analysis.Source = models.SourceParsed
	return analysis, nil
}

// HandleFollowUp sends the user's answer to a clarifying question and expects
// a refined estimate in the same JSON shape. Unlike the initial analysis
// there is no fallback here; a malformed response is an error.
func (s *AnalysisService) HandleFollowUp(ctx context.Context, question, answer string) (*models.Analysis, error) {
	prompt := fmt.Sprintf("Question: %s\nAnswer: %s\n\nProvide updated nutritional information in the same JSON format.", question, answer)
	content, err := s.complete(ctx, prompt, 500, 0.1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	analysis, err := parseAnalysisJSON(content)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	analysis.Source = models.SourceParsed
	return analysis, nil
}

// complete issues one Messages API call and returns the text of the first
// content block.
func (s *AnalysisService) complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := messagesRequest{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var result messagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Content) == 0 {
		return "", errors.New("empty response content")
	}
	return result.Content[0].Text, nil
}

// parseAnalysisJSON pulls the JSON object out of model output that may be
// wrapped in prose, taking everything from the first "{" to the last "}".
func parseAnalysisJSON(content string) (*models.Analysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, ErrInvalidResponse
	}

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// fallbackAnalysis is the rough single-item estimate used when the model's
// output cannot be parsed.
func fallbackAnalysis(description string) *models.Analysis {
	return &models.Analysis{
		Items: []models.AnalysisItem{
			{
				Name:        description,
				Quantity:    "1 serving",
				Calories:    200,
				Protein:     10,
				Carbs:       20,
				Fat:         8,
				Assumptions: "Estimated based on description",
			},
		},
		FollowUpQuestions: []string{},
		TotalCalories:     200,
		TotalProtein:      10,
		TotalCarbs:        20,
		TotalFat:          8,
		Source:            models.SourceFallback,
	}
}
