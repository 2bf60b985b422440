package history

import "time"

// AnalysisRecord is one persisted food-image analysis. Records are
// append-only; allergens_detected holds only the terms that overlapped
// the user's declared allergies at analysis time.
type AnalysisRecord struct {
	AnalysisID        string    `json:"analysis_id"`
	UserID            string    `json:"user_id"`
	FoodName          string    `json:"food_name"`
	Ingredients       []string  `json:"ingredients"`
	AllergensDetected []string  `json:"allergens_detected"`
	SafeToEat         bool      `json:"safe_to_eat"`
	ImageBase64       string    `json:"image_base64"`
	ImageURL          string    `json:"image_url,omitempty"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
}
