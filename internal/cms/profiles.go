package cms

import (
	"context"
	"errors"
	"strconv"

	"jobboard/internal/domain"
)

// ErrProfileRequired is raised before any network call when a profile-owned
// record (education, experience, certification) is written without a
// profile to attach it to. The backend enforces the same rule; this check
// only spares a doomed round trip.
var ErrProfileRequired = errors.New("cms: a profile must exist before adding profile records")

const jobSeekerProfilePopulate = "populate[0]=skills&populate[1]=certifications&populate[2]=educations" +
	"&populate[3]=experiences&populate[4]=resume&populate[5]=users_permissions_user"

// JobSeekerProfileByUser resolves the profile owned by a user, or nil when
// the user has not completed onboarding.
func (c *Client) JobSeekerProfileByUser(ctx context.Context, userID int) (*domain.JobSeekerProfile, error) {
	path := "/api/job-seeker-profiles?filters[users_permissions_user][id][$eq]=" + strconv.Itoa(userID) +
		"&" + jobSeekerProfilePopulate
	list, err := getList[domain.JobSeekerProfile](ctx, c, path, "Failed to fetch job seeker profile")
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return &list.Items[0], nil
}

// GetJobSeekerProfile fetches one profile by its own ID.
func (c *Client) GetJobSeekerProfile(ctx context.Context, id int) (domain.JobSeekerProfile, error) {
	path := "/api/job-seeker-profiles/" + strconv.Itoa(id) + "?" + jobSeekerProfilePopulate
	return getOne[domain.JobSeekerProfile](ctx, c, path, "Failed to fetch job seeker profile")
}

// JobSeekerProfileInput is the writable profile shape. UserID connects the
// owning user relation.
type JobSeekerProfileInput struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	LinkedIn           string `json:"linkedin,omitempty"`
	GitHub             string `json:"github,omitempty"`
	Website            string `json:"website,omitempty"`
	Bio                string `json:"bio,omitempty"`
	Location           string `json:"location,omitempty"`
	JobPreferences     string `json:"jobPreferences,omitempty"`
	SalaryExpectations int    `json:"salaryExpectations,omitempty"`
	UserID             int    `json:"-"`
}

func (c *Client) CreateJobSeekerProfile(ctx context.Context, input JobSeekerProfileInput) (domain.JobSeekerProfile, error) {
	return c.writeJobSeekerProfile(ctx, "POST", "/api/job-seeker-profiles", input, "Failed to create job seeker profile")
}

func (c *Client) UpdateJobSeekerProfile(ctx context.Context, id int, input JobSeekerProfileInput) (domain.JobSeekerProfile, error) {
	return c.writeJobSeekerProfile(ctx, "PUT", "/api/job-seeker-profiles/"+strconv.Itoa(id), input, "Failed to update job seeker profile")
}

func (c *Client) writeJobSeekerProfile(ctx context.Context, method, path string, input JobSeekerProfileInput, fallback string) (domain.JobSeekerProfile, error) {
	payload := map[string]any{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
	}
	setIfPresent(payload, "phoneNumber", input.PhoneNumber)
	setIfPresent(payload, "linkedin", input.LinkedIn)
	setIfPresent(payload, "github", input.GitHub)
	setIfPresent(payload, "website", input.Website)
	setIfPresent(payload, "bio", input.Bio)
	setIfPresent(payload, "location", input.Location)
	setIfPresent(payload, "jobPreferences", input.JobPreferences)
	if input.SalaryExpectations > 0 {
		payload["salaryExpectations"] = input.SalaryExpectations
	}
	if input.UserID > 0 {
		payload["users_permissions_user"] = connectOne(input.UserID)
	}

	var env detailEnvelope
	if err := c.do(ctx, method, path, dataBody(payload), &env, fallback); err != nil {
		return domain.JobSeekerProfile{}, err
	}
	return decodeEntry[domain.JobSeekerProfile](env.Data)
}

// UpdateJobSeekerSkills replaces the profile's skill connections.
func (c *Client) UpdateJobSeekerSkills(ctx context.Context, profileID int, skillIDs []int) error {
	if profileID <= 0 {
		return ErrProfileRequired
	}
	connects := make([]map[string]int, 0, len(skillIDs))
	for _, id := range skillIDs {
		connects = append(connects, map[string]int{"id": id})
	}
	body := dataBody(map[string]any{"skills": map[string]any{"connect": connects}})
	return c.do(ctx, "PUT", "/api/job-seeker-profiles/"+strconv.Itoa(profileID), body, nil, "Failed to update job seeker skills")
}

// EmployerProfileInput is the writable employer profile shape.
type EmployerProfileInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Designation string `json:"designation,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	UserID      int    `json:"-"`
}

func (c *Client) GetEmployerProfile(ctx context.Context, id int) (domain.EmployerProfile, error) {
	path := "/api/employer-profiles/" + strconv.Itoa(id) + "?populate=*"
	return getOne[domain.EmployerProfile](ctx, c, path, "Failed to fetch employer profile")
}

// EmployerProfileByUser resolves the employer profile owned by a user, or
// nil when absent.
func (c *Client) EmployerProfileByUser(ctx context.Context, userID int) (*domain.EmployerProfile, error) {
	path := "/api/employer-profiles?filters[users_permissions_user][id][$eq]=" + strconv.Itoa(userID) +
		"&populate=*"
	list, err := getList[domain.EmployerProfile](ctx, c, path, "Failed to fetch employer profile")
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return &list.Items[0], nil
}

func (c *Client) CreateEmployerProfile(ctx context.Context, input EmployerProfileInput) (domain.EmployerProfile, error) {
	return c.writeEmployerProfile(ctx, "POST", "/api/employer-profiles", input, "Failed to create employer profile")
}

func (c *Client) UpdateEmployerProfile(ctx context.Context, id int, input EmployerProfileInput) (domain.EmployerProfile, error) {
	return c.writeEmployerProfile(ctx, "PUT", "/api/employer-profiles/"+strconv.Itoa(id), input, "Failed to update employer profile")
}

func (c *Client) writeEmployerProfile(ctx context.Context, method, path string, input EmployerProfileInput, fallback string) (domain.EmployerProfile, error) {
	payload := map[string]any{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
	}
	setIfPresent(payload, "phoneNumber", input.PhoneNumber)
	setIfPresent(payload, "designation", input.Designation)
	setIfPresent(payload, "linkedin", input.LinkedIn)
	if input.UserID > 0 {
		payload["users_permissions_user"] = connectOne(input.UserID)
	}

	var env detailEnvelope
	if err := c.do(ctx, method, path, dataBody(payload), &env, fallback); err != nil {
		return domain.EmployerProfile{}, err
	}
	return decodeEntry[domain.EmployerProfile](env.Data)
}

// AddEducation attaches an education record to a profile.
func (c *Client) AddEducation(ctx context.Context, profileID int, input domain.Education) (domain.Education, error) {
	return addProfileRecord[domain.Education](ctx, c, "/api/educations", profileID, input, "Failed to add education")
}

// AddExperience attaches an experience record to a profile.
func (c *Client) AddExperience(ctx context.Context, profileID int, input domain.Experience) (domain.Experience, error) {
	return addProfileRecord[domain.Experience](ctx, c, "/api/experiences", profileID, input, "Failed to add experience")
}

// AddCertification attaches a certification record to a profile.
func (c *Client) AddCertification(ctx context.Context, profileID int, input domain.Certification) (domain.Certification, error) {
	return addProfileRecord[domain.Certification](ctx, c, "/api/certifications", profileID, input, "Failed to add certification")
}

func addProfileRecord[T any](ctx context.Context, c *Client, path string, profileID int, input T, fallback string) (T, error) {
	var zero T
	if profileID <= 0 {
		return zero, ErrProfileRequired
	}

	raw, err := toPayload(input)
	if err != nil {
		return zero, err
	}
	raw["profile"] = profileID
	delete(raw, "id")

	var env detailEnvelope
	if err := c.do(ctx, "POST", path, dataBody(raw), &env, fallback); err != nil {
		return zero, err
	}
	return decodeEntry[T](env.Data)
}
