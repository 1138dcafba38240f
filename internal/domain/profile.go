package domain

import "time"

type JobSeekerProfile struct {
	ID                 int             `json:"id"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Email              string          `json:"email"`
	PhoneNumber        string          `json:"phoneNumber"`
	Headline           string          `json:"headline"`
	About              string          `json:"about"`
	Bio                string          `json:"bio"`
	Location           string          `json:"location"`
	LinkedIn           string          `json:"linkedin"`
	GitHub             string          `json:"github"`
	Website            string          `json:"website"`
	JobPreferences     string          `json:"jobPreferences"`
	SalaryExpectations int             `json:"salaryExpectations"`
	Skills             []Skill         `json:"skills"`
	Educations         []Education     `json:"educations"`
	Experiences        []Experience    `json:"experiences"`
	Certifications     []Certification `json:"certifications"`
	Resume             *Asset          `json:"resume"`
	ProfilePicture     *Asset          `json:"profilePicture"`
	User               *User           `json:"users_permissions_user"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type EmployerProfile struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Designation string    `json:"designation"`
	LinkedIn    string    `json:"linkedin"`
	Company     *Company  `json:"company"`
	User        *User     `json:"users_permissions_user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Education struct {
	ID                 int    `json:"id"`
	School             string `json:"school"`
	Degree             string `json:"degree"`
	FieldOfStudy       string `json:"fieldOfStudy"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	IsCurrentEducation bool   `json:"isCurrentEducation"`
	Description        string `json:"description"`
	Location           string `json:"location"`
}

type Experience struct {
	ID                int    `json:"id"`
	Company           string `json:"company"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	IsRemote          bool   `json:"isRemote"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	IsCurrentPosition bool   `json:"isCurrentPosition"`
	Description       string `json:"description"`
}

type Certification struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuingOrganization"`
	IssueDate           string `json:"issueDate"`
	ExpirationDate      string `json:"expirationDate"`
	CredentialID        string `json:"credentialId"`
	CredentialURL       string `json:"credentialURL"`
}
