package domain

import (
	"time"

	"jobboard/internal/domain/blocks"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
	JobStatusFilled    JobStatus = "filled"
)

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job is the canonical normalized shape produced at the gateway boundary.
// The slug is the preferred external identifier; the numeric ID still works
// for detail lookups.
type Job struct {
	ID                  int              `json:"id"`
	Title               string           `json:"Title"`
	Slug                string           `json:"slug"`
	Description         blocks.BlockList `json:"Description"`
	Responsibilities    blocks.BlockList `json:"responsibilities"`
	Requirements        blocks.BlockList `json:"requirements"`
	Benefits            blocks.BlockList `json:"benefits"`
	Location            string           `json:"location"`
	IsRemote            bool             `json:"isRemote"`
	SalaryRange         SalaryRange      `json:"salaryRange"`
	JobType             JobType          `json:"jobType"`
	Experience          ExperienceLevel  `json:"experience"`
	DatePosted          string           `json:"datePosted"`
	ApplicationDeadline string           `json:"applicationDeadline"`
	Status              JobStatus        `json:"jobStatus"`
	Featured            bool             `json:"featured"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	PublishedAt         *time.Time       `json:"publishedAt"`

	Company *Company `json:"company"`
	Skills  []Skill  `json:"skills"`
	Tags    []Tag    `json:"tags"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SavedJob joins a user and a job with a creation timestamp.
type SavedJob struct {
	ID        int       `json:"id"`
	User      *User     `json:"user"`
	Job       *Job      `json:"job"`
	CreatedAt time.Time `json:"createdAt"`
}
