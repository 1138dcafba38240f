package cms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage          = 1
	defaultPageSize      = 10
	defaultSkillPageSize = 50
)

// SalaryBounds holds inclusive salary filter bounds; zero values are
// treated as absent.
type SalaryBounds struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// JobSearchParams is the structured input of the job query builder. Zero
// values mean "filter absent".
type JobSearchParams struct {
	Title            string       `json:"title,omitempty"`
	Location         string       `json:"location,omitempty"`
	RemoteOnly       bool         `json:"remoteOnly,omitempty"`
	JobTypes         []string     `json:"jobTypes,omitempty"`
	ExperienceLevels []string     `json:"experienceLevels,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Salary           SalaryBounds `json:"salary,omitempty"`
	CompanyID        int          `json:"companyId,omitempty"`
	Categories       []int        `json:"categories,omitempty"`
	SortBy           string       `json:"sortBy,omitempty"`
	Page             int          `json:"page,omitempty"`
	PageSize         int          `json:"pageSize,omitempty"`
}

func (p JobSearchParams) CurrentPage() int {
	if p.Page <= 0 {
		return defaultPage
	}
	return p.Page
}

func (p JobSearchParams) WithPage(page int) JobSearchParams {
	p.Page = page
	return p
}

func (p JobSearchParams) Defaults() JobSearchParams {
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	return JobSearchParams{Page: defaultPage, PageSize: size}
}

// BuildJobQuery maps job search parameters onto the backend's query string
// in a fixed order: pagination, filters, the mandatory published-only
// fragment, sort, relation population. Pure and deterministic; identical
// input yields byte-identical output.
func BuildJobQuery(p JobSearchParams) string {
	q := newQueryString()
	q.pagination(p.Page, p.PageSize, defaultPageSize)

	q.containsi("Title", p.Title)
	q.containsi("location", p.Location)
	if p.RemoteOnly {
		q.add("filters[isRemote][$eq]=true")
	}
	for _, t := range p.JobTypes {
		q.eq("jobType", t)
	}
	for _, lvl := range p.ExperienceLevels {
		q.eq("experience", lvl)
	}
	for _, skill := range p.Skills {
		if skill == "" {
			continue
		}
		q.addf("filters[skills][name][$containsi]=%s", url.QueryEscape(skill))
	}
	if p.Salary.Min > 0 {
		q.addf("filters[salaryRange][min][$gte]=%d", p.Salary.Min)
	}
	if p.Salary.Max > 0 {
		q.addf("filters[salaryRange][max][$lte]=%d", p.Salary.Max)
	}
	if p.CompanyID > 0 {
		q.addf("filters[company][id][$eq]=%d", p.CompanyID)
	}
	for _, cat := range p.Categories {
		q.addf("filters[categories][id][$eq]=%d", cat)
	}

	// Only published postings are ever listed.
	q.add("filters[jobStatus][$eq]=published")

	switch p.SortBy {
	case "oldest":
		q.add("sort=datePosted:asc")
	case "salary-high":
		q.add("sort=salaryRange.max:desc")
	case "salary-low":
		q.add("sort=salaryRange.min:asc")
	default:
		q.add("sort=datePosted:desc")
	}

	q.populate("company", "skills", "tags")
	return q.String()
}

// CompanySearchParams is the structured input of the company query builder.
type CompanySearchParams struct {
	Name       string   `json:"name,omitempty"`
	Location   string   `json:"location,omitempty"`
	Industries []string `json:"industries,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
	Page       int      `json:"page,omitempty"`
	PageSize   int      `json:"pageSize,omitempty"`
}

func (p CompanySearchParams) CurrentPage() int {
	if p.Page <= 0 {
		return defaultPage
	}
	return p.Page
}

func (p CompanySearchParams) WithPage(page int) CompanySearchParams {
	p.Page = page
	return p
}

func (p CompanySearchParams) Defaults() CompanySearchParams {
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	return CompanySearchParams{Page: defaultPage, PageSize: size}
}

func BuildCompanyQuery(p CompanySearchParams) string {
	q := newQueryString()
	q.pagination(p.Page, p.PageSize, defaultPageSize)

	q.containsi("name", p.Name)
	q.containsi("location", p.Location)
	for _, ind := range p.Industries {
		if ind == "" {
			continue
		}
		q.addf("filters[industry][name][$eq]=%s", url.QueryEscape(ind))
	}

	switch p.SortBy {
	case "name-desc":
		q.add("sort=name:desc")
	case "recent":
		q.add("sort=createdAt:desc")
	case "jobs-count":
		q.add("sort=jobs.count:desc")
	default:
		q.add("sort=name:asc")
	}

	q.populate("logo", "industry", "jobs")
	return q.String()
}

// SkillSearchParams is the structured input of the skill query builder.
type SkillSearchParams struct {
	Name     string `json:"name,omitempty"`
	Category int    `json:"category,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

func (p SkillSearchParams) CurrentPage() int {
	if p.Page <= 0 {
		return defaultPage
	}
	return p.Page
}

func (p SkillSearchParams) WithPage(page int) SkillSearchParams {
	p.Page = page
	return p
}

func (p SkillSearchParams) Defaults() SkillSearchParams {
	size := p.PageSize
	if size <= 0 {
		size = defaultSkillPageSize
	}
	return SkillSearchParams{Page: defaultPage, PageSize: size}
}

func BuildSkillQuery(p SkillSearchParams) string {
	q := newQueryString()
	q.pagination(p.Page, p.PageSize, defaultSkillPageSize)

	q.containsi("name", p.Name)
	if p.Category > 0 {
		q.addf("filters[category][id][$eq]=%d", p.Category)
	}

	q.add("sort=name:asc")
	q.populate("category")
	return q.String()
}

// NotificationListParams scopes a notification list to one owning user.
type NotificationListParams struct {
	UserID     int  `json:"userId"`
	OnlyUnread bool `json:"onlyUnread,omitempty"`
	Page       int  `json:"page,omitempty"`
	PageSize   int  `json:"pageSize,omitempty"`
}

func (p NotificationListParams) CurrentPage() int {
	if p.Page <= 0 {
		return defaultPage
	}
	return p.Page
}

func (p NotificationListParams) WithPage(page int) NotificationListParams {
	p.Page = page
	return p
}

func (p NotificationListParams) Defaults() NotificationListParams {
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	return NotificationListParams{UserID: p.UserID, Page: defaultPage, PageSize: size}
}

func BuildNotificationQuery(p NotificationListParams) string {
	q := newQueryString()
	q.addf("filters[users_permissions_user][id][$eq]=%d", p.UserID)
	q.pagination(p.Page, p.PageSize, defaultPageSize)
	if p.OnlyUnread {
		q.add("filters[isRead][$eq]=false")
	}
	q.add("sort=createdAt:desc")
	q.populate("job", "job_application")
	return q.String()
}

// queryString accumulates ordered query fragments.
type queryString struct {
	parts []string
}

func newQueryString() *queryString {
	return &queryString{parts: make([]string, 0, 16)}
}

func (q *queryString) add(fragment string) {
	q.parts = append(q.parts, fragment)
}

func (q *queryString) addf(format string, args ...any) {
	q.parts = append(q.parts, fmt.Sprintf(format, args...))
}

func (q *queryString) pagination(page, pageSize, defaultSize int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	q.add("pagination[page]=" + strconv.Itoa(page))
	q.add("pagination[pageSize]=" + strconv.Itoa(pageSize))
}

func (q *queryString) containsi(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	q.addf("filters[%s][$containsi]=%s", field, url.QueryEscape(value))
}

func (q *queryString) eq(field, value string) {
	if value == "" {
		return
	}
	q.addf("filters[%s][$eq]=%s", field, url.QueryEscape(value))
}

func (q *queryString) populate(relations ...string) {
	for i, rel := range relations {
		q.addf("populate[%d]=%s", i, rel)
	}
}

func (q *queryString) String() string {
	return strings.Join(q.parts, "&")
}
