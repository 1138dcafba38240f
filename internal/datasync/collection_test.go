package datasync

import (
	"context"
	"strings"
	"sync"
	"testing"

	"jobboard/internal/cms"
	"jobboard/internal/domain"
	"jobboard/internal/pkg/logging"
)

// recordingFetch counts calls and remembers every query string built from
// the parameters it saw.
type recordingFetch struct {
	mu      sync.Mutex
	calls   int
	queries []string
	list    cms.List[domain.Job]
	err     error
}

func (r *recordingFetch) fetch(_ context.Context, params cms.JobSearchParams) (cms.List[domain.Job], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.queries = append(r.queries, cms.BuildJobQuery(params))
	return r.list, r.err
}

func (r *recordingFetch) lastQuery() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queries) == 0 {
		return ""
	}
	return r.queries[len(r.queries)-1]
}

func (r *recordingFetch) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func pagedList(page, pageCount int) cms.List[domain.Job] {
	return cms.List[domain.Job]{
		Items:      []domain.Job{{ID: page}},
		Pagination: cms.Pagination{Page: page, PageSize: 10, PageCount: pageCount, Total: pageCount * 10},
	}
}

func TestCollection_SearchRewindsToFirstPage(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 3)}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	if err := c.UpdateParams(context.Background(), cms.JobSearchParams{Page: 4, PageSize: 10}); err != nil {
		t.Fatalf("updateParams: %v", err)
	}

	err := c.Search(context.Background(), func(p cms.JobSearchParams) cms.JobSearchParams {
		p.Title = "Engineer"
		return p
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	q := rec.lastQuery()
	if !strings.Contains(q, "filters[Title][$containsi]=Engineer") {
		t.Fatalf("expected text filter in query, got %s", q)
	}
	if !strings.Contains(q, "pagination[page]=1") {
		t.Fatalf("search must rewind to page 1, got %s", q)
	}
	if !c.Searching() {
		t.Fatalf("search must set the searching flag")
	}
}

func TestCollection_LoadMore(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 2)}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.callCount() != 1 {
		t.Fatalf("expected one fetch, got %d", rec.callCount())
	}

	rec.list = pagedList(2, 2)
	if err := c.LoadMore(context.Background()); err != nil {
		t.Fatalf("loadMore: %v", err)
	}
	if rec.callCount() != 2 {
		t.Fatalf("loadMore must fetch the next page, got %d calls", rec.callCount())
	}
	if got := c.Params().Page; got != 2 {
		t.Fatalf("page must increment by exactly one, got %d", got)
	}

	// On the last page loadMore is a no-op.
	if err := c.LoadMore(context.Background()); err != nil {
		t.Fatalf("loadMore at end: %v", err)
	}
	if rec.callCount() != 2 {
		t.Fatalf("loadMore on the last page must not fetch, got %d calls", rec.callCount())
	}
}

func TestCollection_LoadMoreBeforeFirstFetch(t *testing.T) {
	rec := &recordingFetch{}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	if err := c.LoadMore(context.Background()); err != nil {
		t.Fatalf("loadMore: %v", err)
	}
	if rec.callCount() != 0 {
		t.Fatalf("loadMore with no data must not fetch")
	}
}

func TestCollection_IdenticalParamsServedFromCache(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 1)}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	params := cms.JobSearchParams{Title: "Go", Page: 1, PageSize: 10}
	if err := c.UpdateParams(context.Background(), params); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if err := c.UpdateParams(context.Background(), params); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if rec.callCount() != 1 {
		t.Fatalf("identical parameter sets must reuse the cache, got %d calls", rec.callCount())
	}

	// Any field change, page included, is a cache miss.
	if err := c.UpdateParams(context.Background(), params.WithPage(2)); err != nil {
		t.Fatalf("third fetch: %v", err)
	}
	if rec.callCount() != 2 {
		t.Fatalf("changed page must refetch, got %d calls", rec.callCount())
	}
}

func TestCollection_InvalidateForcesRefetch(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 1)}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	c.Invalidate()
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh after invalidate: %v", err)
	}
	if rec.callCount() != 2 {
		t.Fatalf("invalidate must drop the cache, got %d calls", rec.callCount())
	}
}

func TestCollection_ResetRestoresDefaults(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 1)}
	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())

	err := c.Search(context.Background(), func(p cms.JobSearchParams) cms.JobSearchParams {
		p.Title = "Engineer"
		p.RemoteOnly = true
		return p
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if err := c.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if c.Searching() {
		t.Fatalf("reset must clear the searching flag")
	}
	p := c.Params()
	if p.Title != "" || p.RemoteOnly || p.Page != 1 {
		t.Fatalf("reset must restore defaults, got %+v", p)
	}
	q := rec.lastQuery()
	if strings.Contains(q, "Engineer") || strings.Contains(q, "isRemote") {
		t.Fatalf("baseline fetch must be unfiltered, got %s", q)
	}
}

func TestCollection_StaleResponseDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	fetch := func(_ context.Context, params cms.JobSearchParams) (cms.List[domain.Job], error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(slowStarted)
			<-release
			return pagedList(1, 1), nil
		}
		return pagedList(2, 2), nil
	}

	c := NewCollection[cms.JobSearchParams, domain.Job]("jobs", fetch, logging.Nop())

	done := make(chan error, 1)
	go func() {
		done <- c.UpdateParams(context.Background(), cms.JobSearchParams{Title: "old", Page: 1, PageSize: 10})
	}()
	<-slowStarted

	if err := c.UpdateParams(context.Background(), cms.JobSearchParams{Title: "new", Page: 2, PageSize: 10}); err != nil {
		t.Fatalf("newer fetch: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("superseded fetch: %v", err)
	}

	data, ok := c.Data()
	if !ok {
		t.Fatalf("expected data")
	}
	if data.Pagination.Page != 2 {
		t.Fatalf("stale response overwrote newer state: %+v", data.Pagination)
	}
}

func TestJobs_ApplyFiltersMapsPanelState(t *testing.T) {
	rec := &recordingFetch{list: pagedList(1, 1)}
	j := &Jobs{Collection: NewCollection[cms.JobSearchParams, domain.Job]("jobs", rec.fetch, logging.Nop())}

	err := j.ApplyFilters(context.Background(), FilterState{
		JobTypes:   []string{"full_time", "contract"},
		RemoteOnly: true,
		Salary:     &cms.SalaryBounds{Min: 0, Max: 80000},
	})
	if err != nil {
		t.Fatalf("applyFilters: %v", err)
	}

	q := rec.lastQuery()
	if strings.Count(q, "filters[jobType][$eq]=") != 2 {
		t.Fatalf("expected two job-type fragments, got %s", q)
	}
	if !strings.Contains(q, "filters[jobType][$eq]=full_time") || !strings.Contains(q, "filters[jobType][$eq]=contract") {
		t.Fatalf("expected both job types, got %s", q)
	}
	if !strings.Contains(q, "filters[isRemote][$eq]=true") {
		t.Fatalf("expected remote fragment, got %s", q)
	}
	if !strings.Contains(q, "filters[salaryRange][max][$lte]=80000") {
		t.Fatalf("expected salary upper bound, got %s", q)
	}
	if strings.Contains(q, "[$gte]=0") {
		t.Fatalf("zero salary minimum must be absent, got %s", q)
	}
}

func TestSkills_CreateAppendsToCachedList(t *testing.T) {
	var calls int
	fetch := func(_ context.Context, params cms.SkillSearchParams) (cms.List[domain.Skill], error) {
		calls++
		return cms.List[domain.Skill]{
			Items:      []domain.Skill{{ID: 1, Name: "Go"}},
			Pagination: cms.Pagination{Page: 1, PageSize: 50, PageCount: 1, Total: 1},
		}, nil
	}
	s := &Skills{Collection: NewCollection[cms.SkillSearchParams, domain.Skill]("skills", fetch, logging.Nop())}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	s.AppendCached(domain.Skill{ID: 2, Name: "Terraform"})

	data, _ := s.Data()
	if len(data.Items) != 2 || data.Items[1].Name != "Terraform" {
		t.Fatalf("optimistic append missing: %+v", data.Items)
	}

	// The cache entry was updated too, so refetching is still avoided.
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if calls != 1 {
		t.Fatalf("append must not force a refetch, got %d calls", calls)
	}
	data, _ = s.Data()
	if len(data.Items) != 2 {
		t.Fatalf("cached append lost on refresh: %+v", data.Items)
	}
}
