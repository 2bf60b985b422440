package analysis

import "strings"

// MatchAllergens intersects the provider-detected allergens with the
// user's declared list. A provider term is included when either string
// is a case-insensitive substring of the other, so a declared "nut"
// flags "Peanuts" and a declared "peanut butter" is flagged by "nuts".
// Deliberately permissive: false positives beat false negatives here.
// Returned terms keep the provider's casing and order; each provider
// element is included at most once, but repeats on the provider side
// pass through.
func MatchAllergens(detected, declared []string) []string {
	matched := []string{}
	for _, allergen := range detected {
		lower := strings.ToLower(allergen)
		for _, userAllergen := range declared {
			userLower := strings.ToLower(userAllergen)
			if strings.Contains(lower, userLower) || strings.Contains(userLower, lower) {
				matched = append(matched, allergen)
				break
			}
		}
	}
	return matched
}

// WarningMessage builds the user-facing warning for a non-empty match.
func WarningMessage(matched []string) string {
	if len(matched) == 0 {
		return ""
	}
	return "⚠️ WARNING: This food contains " + strings.Join(matched, ", ") + " which you are allergic to!"
}
