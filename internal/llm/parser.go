package llm

import (
	"encoding/json"
	"strings"
)

// FoodAnalysis is the structured result extracted from the model's reply.
type FoodAnalysis struct {
	FoodName          string
	Ingredients       []string
	AllergensDetected []string
	Confidence        float64
}

// ParseFoodAnalysis never fails: a reply that cannot be decoded at all
// yields the sentinel record (confidence 0.5), while individually missing
// fields in a decodable reply fall back per-field (confidence 0.8).
func ParseFoodAnalysis(raw string) FoodAnalysis {
	content := stripCodeFence(raw)

	var doc struct {
		FoodName          *string  `json:"food_name"`
		Ingredients       []string `json:"ingredients"`
		AllergensDetected []string `json:"allergens_detected"`
		Confidence        *float64 `json:"confidence"`
	}

	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return FoodAnalysis{
			FoodName:          "Unknown Food",
			Ingredients:       []string{"Unable to parse ingredients"},
			AllergensDetected: []string{},
			Confidence:        0.5,
		}
	}

	result := FoodAnalysis{
		FoodName:          "Unknown Food",
		Ingredients:       []string{},
		AllergensDetected: []string{},
		Confidence:        0.8,
	}
	if doc.FoodName != nil {
		result.FoodName = *doc.FoodName
	}
	if doc.Ingredients != nil {
		result.Ingredients = doc.Ingredients
	}
	if doc.AllergensDetected != nil {
		result.AllergensDetected = doc.AllergensDetected
	}
	if doc.Confidence != nil {
		result.Confidence = *doc.Confidence
	}
	return result
}

// stripCodeFence unwraps a leading markdown fence, with or without the
// json language tag. Text without a fence passes through untouched.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	var rest string
	switch {
	case strings.HasPrefix(text, "```json"):
		rest = strings.TrimPrefix(text, "```json")
	case strings.HasPrefix(text, "```"):
		rest = strings.TrimPrefix(text, "```")
	default:
		return text
	}

	if idx := strings.Index(rest, "```"); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
