package llm

import "strings"

func BuildFoodAnalysisPrompt(userAllergies []string) string {
	return `Analyze this food image and identify ingredients and allergens.
Pay special attention to these allergens the user is allergic to: ` + strings.Join(userAllergies, ", ") + `.

Focus on detecting these common allergens:
- Nuts (peanuts, tree nuts)
- Dairy (milk, cheese, butter)
- Gluten (wheat, barley, rye)
- Shellfish (shrimp, crab, lobster)
- Eggs
- Soy
- Fish
- Sesame

Return your response as a JSON object with this exact structure:
{
    "food_name": "name of the dish",
    "ingredients": ["ingredient1", "ingredient2", "ingredient3"],
    "allergens_detected": ["allergen1", "allergen2"],
    "confidence": 0.95
}

Be thorough and conservative - if you're unsure about an ingredient, include it for safety.`
}
