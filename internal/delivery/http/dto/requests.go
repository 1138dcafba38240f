package dto

import (
	"jobboard/internal/cms"
	"jobboard/internal/datasync"
	"jobboard/internal/domain"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Code                 string `json:"code" validate:"required"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

type JobSearchRequest struct {
	Title            string            `json:"title"`
	Location         string            `json:"location"`
	RemoteOnly       bool              `json:"remoteOnly"`
	JobTypes         []string          `json:"jobTypes" validate:"dive,oneof=full_time part_time contract internship freelance"`
	ExperienceLevels []string          `json:"experienceLevels" validate:"dive,oneof=entry mid senior executive"`
	Skills           []string          `json:"skills"`
	Salary           *cms.SalaryBounds `json:"salary"`
	CompanyID        int               `json:"companyId"`
	Categories       []int             `json:"categories"`
	SortBy           string            `json:"sortBy"`
	PageSize         int               `json:"pageSize" validate:"gte=0"`
}

// Params maps the request onto search parameters; absent fields stay at
// their zero values so the query builder omits them.
func (r JobSearchRequest) Params() cms.JobSearchParams {
	p := cms.JobSearchParams{
		Title:            r.Title,
		Location:         r.Location,
		RemoteOnly:       r.RemoteOnly,
		JobTypes:         r.JobTypes,
		ExperienceLevels: r.ExperienceLevels,
		Skills:           r.Skills,
		CompanyID:        r.CompanyID,
		Categories:       r.Categories,
		SortBy:           r.SortBy,
		PageSize:         r.PageSize,
	}
	if r.Salary != nil {
		p.Salary = *r.Salary
	}
	return p
}

type JobFilterRequest struct {
	JobTypes         []string          `json:"jobTypes" validate:"dive,oneof=full_time part_time contract internship freelance"`
	ExperienceLevels []string          `json:"experienceLevels" validate:"dive,oneof=entry mid senior executive"`
	RemoteOnly       bool              `json:"remoteOnly"`
	Salary           *cms.SalaryBounds `json:"salary"`
	Skills           []string          `json:"skills"`
}

func (r JobFilterRequest) State() datasync.FilterState {
	return datasync.FilterState{
		JobTypes:         r.JobTypes,
		ExperienceLevels: r.ExperienceLevels,
		RemoteOnly:       r.RemoteOnly,
		Salary:           r.Salary,
		Skills:           r.Skills,
	}
}

type CompanySearchRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Industries []string `json:"industries"`
	SortBy     string   `json:"sortBy"`
	PageSize   int      `json:"pageSize" validate:"gte=0"`
}

func (r CompanySearchRequest) Params() cms.CompanySearchParams {
	return cms.CompanySearchParams{
		Name:       r.Name,
		Location:   r.Location,
		Industries: r.Industries,
		SortBy:     r.SortBy,
		PageSize:   r.PageSize,
	}
}

type ApplicationRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
	ResumeID    int    `json:"resumeId"`
}

func (r ApplicationRequest) Input() cms.ApplicationInput {
	return cms.ApplicationInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		CoverLetter: r.CoverLetter,
		ResumeID:    r.ResumeID,
	}
}

type SkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=80"`
	Slug     string `json:"slug"`
	Category int    `json:"category"`
}

type CompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	Location    string `json:"location"`
	Size        string `json:"size"`
	FoundedYear int    `json:"foundedYear" validate:"gte=0"`
	CompanyType string `json:"companyType"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	IndustryID  int    `json:"industryId"`
}

func (r CompanyRequest) Input() cms.CompanyInput {
	return cms.CompanyInput{
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Location:    r.Location,
		Size:        r.Size,
		FoundedYear: r.FoundedYear,
		CompanyType: r.CompanyType,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		IndustryID:  r.IndustryID,
	}
}

type JobSeekerProfileRequest struct {
	FirstName          string `json:"firstName" validate:"required"`
	LastName           string `json:"lastName" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	PhoneNumber        string `json:"phoneNumber"`
	LinkedIn           string `json:"linkedin" validate:"omitempty,url"`
	GitHub             string `json:"github" validate:"omitempty,url"`
	Website            string `json:"website" validate:"omitempty,url"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	JobPreferences     string `json:"jobPreferences"`
	SalaryExpectations int    `json:"salaryExpectations" validate:"gte=0"`
}

func (r JobSeekerProfileRequest) Input() cms.JobSeekerProfileInput {
	return cms.JobSeekerProfileInput{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		PhoneNumber:        r.PhoneNumber,
		LinkedIn:           r.LinkedIn,
		GitHub:             r.GitHub,
		Website:            r.Website,
		Bio:                r.Bio,
		Location:           r.Location,
		JobPreferences:     r.JobPreferences,
		SalaryExpectations: r.SalaryExpectations,
	}
}

type EmployerProfileRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Designation string `json:"designation"`
	LinkedIn    string `json:"linkedin" validate:"omitempty,url"`
}

func (r EmployerProfileRequest) Input() cms.EmployerProfileInput {
	return cms.EmployerProfileInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Designation: r.Designation,
		LinkedIn:    r.LinkedIn,
	}
}

type EducationRequest struct {
	School             string `json:"school" validate:"required"`
	Degree             string `json:"degree"`
	FieldOfStudy       string `json:"fieldOfStudy"`
	StartDate          string `json:"startDate" validate:"required"`
	EndDate            string `json:"endDate"`
	IsCurrentEducation bool   `json:"isCurrentEducation"`
	Description        string `json:"description"`
	Location           string `json:"location"`
}

type ExperienceRequest struct {
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description"`
}

type CertificationRequest struct {
	Name          string `json:"name" validate:"required"`
	Organization  string `json:"organization"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate"`
	CredentialID  string `json:"credentialId"`
	CredentialURL string `json:"credentialUrl" validate:"omitempty,url"`
}

func (r EducationRequest) Record() domain.Education {
	return domain.Education{
		School:             r.School,
		Degree:             r.Degree,
		FieldOfStudy:       r.FieldOfStudy,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		IsCurrentEducation: r.IsCurrentEducation,
		Description:        r.Description,
		Location:           r.Location,
	}
}

func (r ExperienceRequest) Record() domain.Experience {
	return domain.Experience{
		Company:           r.Company,
		Title:             r.Title,
		Location:          r.Location,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		IsCurrentPosition: r.IsCurrentJob,
		Description:       r.Description,
	}
}

func (r CertificationRequest) Record() domain.Certification {
	return domain.Certification{
		Name:                r.Name,
		IssuingOrganization: r.Organization,
		IssueDate:           r.IssueDate,
		ExpirationDate:      r.ExpiryDate,
		CredentialID:        r.CredentialID,
		CredentialURL:       r.CredentialURL,
	}
}

type SkillIDsRequest struct {
	SkillIDs []int `json:"skillIds" validate:"required,min=1"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed interview rejected accepted"`
}
