package models

// SkillNameCount pairs a skill name with the number of users recording it.
type SkillNameCount struct {
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"count"`
}

// Analytics aggregates user and skill figures for the admin dashboard.
// swagger:model Analytics
type Analytics struct {
	// Total number of registered users
	TotalUsers int `json:"total_users"`

	// Total number of recorded skills
	TotalSkills int `json:"total_skills"`

	// Skill counts grouped by proficiency level
	SkillsByLevel map[string]int `json:"skills_by_level"`

	// Most recorded skill names, descending by count
	TopSkills []SkillNameCount `json:"top_skills"`
}
