package domain

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Confirmed bool      `json:"confirmed"`
	Blocked   bool      `json:"blocked"`
	Role      *Role     `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Populated by the current-user lookup when profile relations are
	// requested; nil when the user has not completed onboarding.
	JobSeekerProfile *JobSeekerProfile `json:"job_seeker_profile"`
	EmployerProfile  *EmployerProfile  `json:"employer_profile"`
}

type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Onboarded reports whether the user has created either profile kind.
func (u *User) Onboarded() bool {
	if u == nil {
		return false
	}
	return u.JobSeekerProfile != nil || u.EmployerProfile != nil
}

type SavedSearch struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Query     string    `json:"query"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
