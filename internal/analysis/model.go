package analysis

// Result is the response body of one food-image analysis.
type Result struct {
	FoodName          string   `json:"food_name"`
	Ingredients       []string `json:"ingredients"`
	AllergensDetected []string `json:"allergens_detected"`
	SafeToEat         bool     `json:"safe_to_eat"`
	Confidence        float64  `json:"confidence"`
	WarningMessage    string   `json:"warning_message,omitempty"`
}
