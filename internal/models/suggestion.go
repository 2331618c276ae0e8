package models

// Suggestions holds deduplicated field values used by profile and skill
// autocomplete. Each list may be empty when the underlying read fails.
// swagger:model Suggestions
type Suggestions struct {
	// Distinct job roles across all users
	Roles []string `json:"roles"`

	// Distinct project names
	ProjectNames []string `json:"project_names"`

	// Distinct client names
	ClientNames []string `json:"client_names"`

	// Distinct office locations
	Locations []string `json:"locations"`

	// Distinct skill names
	SkillNames []string `json:"skill_names"`
}
