package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationAccepted  ApplicationStatus = "accepted"
)

// JobApplication always references exactly one job and one applicant.
type JobApplication struct {
	ID              int               `json:"id"`
	CoverLetter     string            `json:"coverLetter"`
	Resume          *Asset            `json:"resume"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate time.Time         `json:"applicationDate"`
	Notes           string            `json:"notes"`
	Applicant       *User             `json:"applicant"`
	Job             *Job              `json:"job"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
