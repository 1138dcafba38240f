package datasync

import (
	"context"

	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

// Skills is the skill-list view. Skills are free-form user-creatable tags,
// so a freshly created one is appended to the cached list instead of
// forcing a refetch.
type Skills struct {
	*Collection[cms.SkillSearchParams, domain.Skill]
	client *cms.Client
}

func NewSkills(client *cms.Client, logger *logging.Logger) *Skills {
	return &Skills{
		Collection: NewCollection("skills", client.ListSkills, logger),
		client:     client,
	}
}

// Create registers a new skill with the backend and folds it into the
// cached list optimistically.
func (s *Skills) Create(ctx context.Context, input cms.SkillInput) (domain.Skill, error) {
	skill, err := s.client.CreateSkill(ctx, input)
	if err != nil {
		return domain.Skill{}, err
	}
	s.AppendCached(skill)
	return skill, nil
}
