package types

// PreferenceProfile is the aggregated, normalized preference state for one
// user. Every list field is non-nil; SkillLevel is always one of beginner,
// intermediate or advanced.
type PreferenceProfile struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	Goals               []string `json:"goals"`
	Equipment           []string `json:"equipment"`
	SkillLevel          string   `json:"skill_level"`
	PreferredPrepTime   *int     `json:"preferred_prep_time,omitempty"`
}
