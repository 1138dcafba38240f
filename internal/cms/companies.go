package cms

import (
	"context"
	"strconv"

	"jobboard/internal/domain"
)

// ListCompanies fetches companies matching params.
func (c *Client) ListCompanies(ctx context.Context, params CompanySearchParams) (List[domain.Company], error) {
	return getList[domain.Company](ctx, c, "/api/companies?"+BuildCompanyQuery(params), "Failed to fetch companies")
}

// GetCompany fetches one company with its logo, industry, and postings.
func (c *Client) GetCompany(ctx context.Context, id int) (domain.Company, error) {
	path := "/api/companies/" + strconv.Itoa(id) +
		"?populate[0]=logo&populate[1]=industry&populate[2]=jobs&populate[3]=jobs.skills&populate[4]=jobs.tags"
	return getOne[domain.Company](ctx, c, path, "Failed to fetch company details")
}

// CompanyJobs lists a company's published postings, most recent first.
func (c *Client) CompanyJobs(ctx context.Context, companyID, page, pageSize int) (List[domain.Job], error) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = 5
	}
	q := newQueryString()
	q.addf("filters[company][id][$eq]=%d", companyID)
	q.addf("pagination[page]=%d", page)
	q.addf("pagination[pageSize]=%d", pageSize)
	q.populate("skills", "tags")
	q.add("sort=datePosted:desc")
	return getList[domain.Job](ctx, c, "/api/jobs?"+q.String(), "Failed to fetch company jobs")
}

// TrendingCompanies returns the companies with the most postings.
func (c *Client) TrendingCompanies(ctx context.Context, limit int) (List[domain.Company], error) {
	if limit <= 0 {
		limit = 5
	}
	q := newQueryString()
	q.addf("pagination[pageSize]=%d", limit)
	q.populate("logo")
	q.add("sort=jobs.count:desc")
	return getList[domain.Company](ctx, c, "/api/companies?"+q.String(), "Failed to fetch trending companies")
}

// ListIndustries returns every industry, alphabetized.
func (c *Client) ListIndustries(ctx context.Context) (List[domain.Industry], error) {
	return getList[domain.Industry](ctx, c, "/api/industries?sort=name:asc", "Failed to fetch industries")
}

// CompanyInput is the writable company shape used during employer
// onboarding.
type CompanyInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Size        string `json:"size,omitempty"`
	FoundedYear int    `json:"foundedYear,omitempty"`
	CompanyType string `json:"companyType,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IndustryID  int    `json:"-"`
}

// CreateCompany creates a company, connecting the industry relation when
// one is given.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (domain.Company, error) {
	payload := map[string]any{
		"name": input.Name,
	}
	setIfPresent(payload, "description", input.Description)
	setIfPresent(payload, "website", input.Website)
	setIfPresent(payload, "location", input.Location)
	setIfPresent(payload, "size", input.Size)
	setIfPresent(payload, "companyType", input.CompanyType)
	setIfPresent(payload, "email", input.Email)
	setIfPresent(payload, "phoneNumber", input.PhoneNumber)
	if input.FoundedYear > 0 {
		payload["foundedYear"] = input.FoundedYear
	}
	if input.IndustryID > 0 {
		payload["industry"] = connectOne(input.IndustryID)
	}

	var env detailEnvelope
	if err := c.do(ctx, "POST", "/api/companies", dataBody(payload), &env, "Failed to create company"); err != nil {
		return domain.Company{}, err
	}
	return decodeEntry[domain.Company](env.Data)
}

func setIfPresent(payload map[string]any, key, value string) {
	if value != "" {
		payload[key] = value
	}
}

// dataBody wraps a writable payload in the backend's {data:{...}} envelope.
func dataBody(payload any) map[string]any {
	return map[string]any{"data": payload}
}

// connectOne renders the backend's relation-connect shape for one ID.
func connectOne(id int) map[string]any {
	return map[string]any{"connect": []int{id}}
}
