package datasync

import (
	"context"

	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

// FilterState mirrors the filter panel: multi-select job types and
// experience levels, a remote-only toggle, salary bounds and skill names.
type FilterState struct {
	JobTypes         []string          `json:"jobTypes"`
	ExperienceLevels []string          `json:"experienceLevels"`
	RemoteOnly       bool              `json:"remoteOnly"`
	Salary           *cms.SalaryBounds `json:"salary"`
	Skills           []string          `json:"skills"`
}

// Jobs is the job-list view: a Collection plus filter-panel mapping.
type Jobs struct {
	*Collection[cms.JobSearchParams, domain.Job]
}

func NewJobs(client *cms.Client, logger *logging.Logger) *Jobs {
	return &Jobs{Collection: NewCollection("jobs", client.ListJobs, logger)}
}

// ApplyFilters maps panel state onto search parameters, keeping the free
// text and location already entered and rewinding to the first page.
func (j *Jobs) ApplyFilters(ctx context.Context, f FilterState) error {
	return j.Search(ctx, func(p cms.JobSearchParams) cms.JobSearchParams {
		p.JobTypes = f.JobTypes
		p.ExperienceLevels = f.ExperienceLevels
		p.RemoteOnly = f.RemoteOnly
		p.Skills = f.Skills
		if f.Salary != nil {
			p.Salary = *f.Salary
		} else {
			p.Salary = cms.SalaryBounds{}
		}
		return p
	})
}

// SearchTerm runs a free-text search over the current filters.
func (j *Jobs) SearchTerm(ctx context.Context, title, location string) error {
	return j.Search(ctx, func(p cms.JobSearchParams) cms.JobSearchParams {
		p.Title = title
		p.Location = location
		return p
	})
}
