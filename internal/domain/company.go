package domain

import (
	"time"

	"jobboard/internal/domain/blocks"
)

type Company struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description blocks.BlockList `json:"description"`
	Website     string           `json:"website"`
	Location    string           `json:"location"`
	Size        string           `json:"size"`
	FoundedYear int              `json:"foundedYear"`
	CompanyType string           `json:"companyType"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phoneNumber"`
	Logo        *Asset           `json:"logo"`
	Industry    *Industry        `json:"industry"`
	Jobs        []Job            `json:"jobs"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type Industry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Asset is a file descriptor returned by the upload endpoint and nested
// wherever the CMS stores media (logos, resumes, profile pictures).
type Asset struct {
	ID   int     `json:"id"`
	URL  string  `json:"url"`
	Name string  `json:"name"`
	Mime string  `json:"mime"`
	Size float64 `json:"size"`
}
