package datasync

import (
	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

// Companies is the company-directory view.
type Companies struct {
	*Collection[cms.CompanySearchParams, domain.Company]
}

func NewCompanies(client *cms.Client, logger *logging.Logger) *Companies {
	return &Companies{Collection: NewCollection("companies", client.ListCompanies, logger)}
}
