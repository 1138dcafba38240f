package cms

import (
	"context"
	"strconv"

	"jobboard/internal/domain"
)

// ListSkills fetches skills matching params, alphabetized.
func (c *Client) ListSkills(ctx context.Context, params SkillSearchParams) (List[domain.Skill], error) {
	return getList[domain.Skill](ctx, c, "/api/skills?"+BuildSkillQuery(params), "Failed to fetch skills")
}

// SkillInput is the writable skill shape. Skills are free-form and
// user-creatable; the backend does not deduplicate names.
type SkillInput struct {
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Category int    `json:"skill_category,omitempty"`
}

// CreateSkill creates a skill and returns the stored record.
func (c *Client) CreateSkill(ctx context.Context, input SkillInput) (domain.Skill, error) {
	var env detailEnvelope
	if err := c.do(ctx, "POST", "/api/skills", dataBody(input), &env, "Failed to create skill"); err != nil {
		return domain.Skill{}, err
	}
	return decodeEntry[domain.Skill](env.Data)
}

// PopularSkills returns the skills referenced by the most postings.
func (c *Client) PopularSkills(ctx context.Context, limit int) (List[domain.Skill], error) {
	if limit <= 0 {
		limit = 20
	}
	path := "/api/skills?pagination[pageSize]=" + strconv.Itoa(limit) + "&sort=jobs.count:desc"
	return getList[domain.Skill](ctx, c, path, "Failed to fetch popular skills")
}

// SkillCategories returns every skill category, alphabetized.
func (c *Client) SkillCategories(ctx context.Context) (List[domain.SkillCategory], error) {
	return getList[domain.SkillCategory](ctx, c, "/api/skill-categories?sort=name:asc", "Failed to fetch skill categories")
}
