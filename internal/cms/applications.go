package cms

import (
	"context"
	"strconv"
	"time"

	"jobboard/internal/domain"
)

// ApplicationInput is the writable application shape. Job, submission
// timestamp, and initial status are stamped by SubmitApplication.
type ApplicationInput struct {
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeID    int    `json:"-"`
	ApplicantID int    `json:"-"`
}

// SubmitApplication creates a pending application for one job.
func (c *Client) SubmitApplication(ctx context.Context, jobID int, input ApplicationInput) (domain.JobApplication, error) {
	payload := map[string]any{
		"job":             jobID,
		"applicationDate": time.Now().UTC().Format(time.RFC3339),
		"status":          string(domain.ApplicationPending),
	}
	setIfPresent(payload, "fullName", input.FullName)
	setIfPresent(payload, "email", input.Email)
	setIfPresent(payload, "phone", input.Phone)
	setIfPresent(payload, "coverLetter", input.CoverLetter)
	if input.ResumeID > 0 {
		payload["resume"] = input.ResumeID
	}
	if input.ApplicantID > 0 {
		payload["applicant"] = input.ApplicantID
	}

	var env detailEnvelope
	if err := c.do(ctx, "POST", "/api/job-applications", dataBody(payload), &env, "Failed to submit application"); err != nil {
		return domain.JobApplication{}, err
	}
	return decodeEntry[domain.JobApplication](env.Data)
}

// UserApplications lists a user's applications, most recent first.
func (c *Client) UserApplications(ctx context.Context, userID int) (List[domain.JobApplication], error) {
	path := "/api/job-applications?filters[applicant][id][$eq]=" + strconv.Itoa(userID) +
		"&populate=job,job.company,resume&sort=applicationDate:desc"
	return getList[domain.JobApplication](ctx, c, path, "Failed to fetch user applications")
}

// GetApplication fetches one application with its job and resume.
func (c *Client) GetApplication(ctx context.Context, id int) (domain.JobApplication, error) {
	path := "/api/job-applications/" + strconv.Itoa(id) + "?populate=job,job.company,job.skills,resume"
	return getOne[domain.JobApplication](ctx, c, path, "Failed to fetch application details")
}

// UpdateApplicationStatus moves an application through its status
// lifecycle (e.g. withdrawn by the applicant, reviewed by the employer).
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) (domain.JobApplication, error) {
	body := dataBody(map[string]any{"status": string(status)})
	var env detailEnvelope
	if err := c.do(ctx, "PUT", "/api/job-applications/"+strconv.Itoa(id), body, &env, "Failed to update application status"); err != nil {
		return domain.JobApplication{}, err
	}
	return decodeEntry[domain.JobApplication](env.Data)
}
