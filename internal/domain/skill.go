package domain

import "time"

// Skill names are free-form and user-creatable; the CMS does not deduplicate
// them.
type Skill struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Category  *SkillCategory `json:"category"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type SkillCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
