package cms

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jobboard/internal/domain"
)

const jobDetailPopulate = "populate[0]=company&populate[1]=company.logo&populate[2]=skills&populate[3]=tags"

// ListJobs fetches published job postings matching params.
func (c *Client) ListJobs(ctx context.Context, params JobSearchParams) (List[domain.Job], error) {
	return getList[domain.Job](ctx, c, "/api/jobs?"+BuildJobQuery(params), "Failed to fetch jobs")
}

// GetJob resolves a job by numeric ID or by slug. The slug is the preferred
// external identifier; a slug lookup filters the collection endpoint and
// takes the first match.
func (c *Client) GetJob(ctx context.Context, idOrSlug string) (domain.Job, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		path := "/api/jobs/" + strconv.Itoa(id) + "?" + jobDetailPopulate
		return getOne[domain.Job](ctx, c, path, "Failed to fetch job details")
	}

	path := "/api/jobs?filters[slug][$eq]=" + url.QueryEscape(idOrSlug) + "&" + jobDetailPopulate
	list, err := getList[domain.Job](ctx, c, path, "Failed to fetch job details")
	if err != nil {
		return domain.Job{}, err
	}
	if len(list.Items) == 0 {
		return domain.Job{}, &APIError{Status: http.StatusNotFound, Message: "Job not found"}
	}
	return list.Items[0], nil
}

// SimilarJobs returns recent published jobs sharing skills with the given
// job, the job itself excluded.
func (c *Client) SimilarJobs(ctx context.Context, jobID, limit int) (List[domain.Job], error) {
	if limit <= 0 {
		limit = 5
	}

	seed, err := getOne[domain.Job](ctx, c,
		"/api/jobs/"+strconv.Itoa(jobID)+"?populate[0]=skills&populate[1]=tags",
		"Failed to fetch job details for similar jobs")
	if err != nil {
		return List[domain.Job]{}, err
	}

	q := newQueryString()
	q.addf("filters[id][$ne]=%d", jobID)
	q.addf("pagination[pageSize]=%d", limit)
	q.populate("company", "skills", "tags")
	q.add("sort=datePosted:desc")
	for _, skill := range seed.Skills {
		q.addf("filters[skills][id][$eq]=%d", skill.ID)
	}

	return getList[domain.Job](ctx, c, "/api/jobs?"+q.String(), "Failed to fetch similar jobs")
}

// FeaturedJobs returns the most recent featured postings.
func (c *Client) FeaturedJobs(ctx context.Context, limit int) (List[domain.Job], error) {
	if limit <= 0 {
		limit = 5
	}
	q := newQueryString()
	q.add("filters[featured][$eq]=true")
	q.addf("pagination[pageSize]=%d", limit)
	q.populate("company", "skills")
	q.add("sort=datePosted:desc")
	return getList[domain.Job](ctx, c, "/api/jobs?"+q.String(), "Failed to fetch featured jobs")
}

// PopularTags returns the tags attached to the most postings.
func (c *Client) PopularTags(ctx context.Context, limit int) (List[domain.Tag], error) {
	if limit <= 0 {
		limit = 10
	}
	path := "/api/tags?pagination[pageSize]=" + strconv.Itoa(limit) + "&sort=jobs.count:desc"
	return getList[domain.Tag](ctx, c, path, "Failed to fetch popular job tags")
}
