package cms

import (
	"context"
	"strconv"

	"jobboard/internal/domain"
)

// SaveJob bookmarks a job for a user.
func (c *Client) SaveJob(ctx context.Context, userID, jobID int) (domain.SavedJob, error) {
	body := dataBody(map[string]any{"user": userID, "job": jobID})
	var env detailEnvelope
	if err := c.do(ctx, "POST", "/api/saved-jobs", body, &env, "Failed to save job"); err != nil {
		return domain.SavedJob{}, err
	}
	return decodeEntry[domain.SavedJob](env.Data)
}

// RemoveSavedJob deletes a bookmark by its own ID (not the job's).
func (c *Client) RemoveSavedJob(ctx context.Context, savedJobID int) error {
	return c.do(ctx, "DELETE", "/api/saved-jobs/"+strconv.Itoa(savedJobID), nil, nil, "Failed to remove saved job")
}

// SavedJobs lists a user's bookmarks, newest first.
func (c *Client) SavedJobs(ctx context.Context, userID int) (List[domain.SavedJob], error) {
	path := "/api/saved-jobs?filters[user][id][$eq]=" + strconv.Itoa(userID) +
		"&populate[0]=job&populate[1]=job.company&populate[2]=job.skills&sort=createdAt:desc"
	return getList[domain.SavedJob](ctx, c, path, "Failed to fetch saved jobs")
}
