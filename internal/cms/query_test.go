package cms

import (
	"strings"
	"testing"
)

func TestBuildJobQuery_Defaults(t *testing.T) {
	q := BuildJobQuery(JobSearchParams{})

	for _, want := range []string{
		"pagination[page]=1",
		"pagination[pageSize]=10",
		"filters[jobStatus][$eq]=published",
		"sort=datePosted:desc",
		"populate[0]=company",
		"populate[1]=skills",
		"populate[2]=tags",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q: %s", want, q)
		}
	}
}

func TestBuildJobQuery_AbsentFiltersOmitted(t *testing.T) {
	q := BuildJobQuery(JobSearchParams{Title: "  "})

	if strings.Contains(q, "$containsi=") && !strings.Contains(q, "$containsi=%") {
		// No filter value should render empty.
		for _, frag := range strings.Split(q, "&") {
			if strings.HasSuffix(frag, "=") {
				t.Fatalf("empty fragment rendered: %q", frag)
			}
		}
	}
	if strings.Contains(q, "filters[Title]") {
		t.Fatalf("blank title must be treated as absent: %s", q)
	}
	if strings.Contains(q, "filters[isRemote]") {
		t.Fatalf("unset remote flag must be omitted: %s", q)
	}
	if strings.Contains(q, "filters[salaryRange]") {
		t.Fatalf("unset salary bounds must be omitted: %s", q)
	}
}

func TestBuildJobQuery_TextFilters(t *testing.T) {
	q := BuildJobQuery(JobSearchParams{Title: "Engineer", Location: "New York"})

	if !strings.Contains(q, "filters[Title][$containsi]=Engineer") {
		t.Fatalf("missing title filter: %s", q)
	}
	if !strings.Contains(q, "filters[location][$containsi]=New+York") {
		t.Fatalf("location must be escaped: %s", q)
	}
}

func TestBuildJobQuery_RepeatedEqualityFragments(t *testing.T) {
	q := BuildJobQuery(JobSearchParams{
		JobTypes:         []string{"full_time", "contract"},
		ExperienceLevels: []string{"senior"},
		Skills:           []string{"Go", "SQL"},
	})

	if strings.Count(q, "filters[jobType][$eq]=") != 2 {
		t.Fatalf("expected two job type fragments: %s", q)
	}
	if !strings.Contains(q, "filters[jobType][$eq]=full_time&filters[jobType][$eq]=contract") {
		t.Fatalf("job type fragments out of order: %s", q)
	}
	if !strings.Contains(q, "filters[experience][$eq]=senior") {
		t.Fatalf("missing experience fragment: %s", q)
	}
	if strings.Count(q, "filters[skills][name][$containsi]=") != 2 {
		t.Fatalf("expected two skill fragments: %s", q)
	}
}

func TestBuildJobQuery_SalaryAndRelationsFilters(t *testing.T) {
	q := BuildJobQuery(JobSearchParams{
		RemoteOnly: true,
		Salary:     SalaryBounds{Min: 50000, Max: 80000},
		CompanyID:  7,
		Categories: []int{3, 9},
	})

	for _, want := range []string{
		"filters[isRemote][$eq]=true",
		"filters[salaryRange][min][$gte]=50000",
		"filters[salaryRange][max][$lte]=80000",
		"filters[company][id][$eq]=7",
		"filters[categories][id][$eq]=3",
		"filters[categories][id][$eq]=9",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q: %s", want, q)
		}
	}
}

func TestBuildJobQuery_Sorts(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{"", "sort=datePosted:desc"},
		{"recent", "sort=datePosted:desc"},
		{"oldest", "sort=datePosted:asc"},
		{"salary-high", "sort=salaryRange.max:desc"},
		{"salary-low", "sort=salaryRange.min:asc"},
		{"bogus", "sort=datePosted:desc"},
	}
	for _, tc := range cases {
		q := BuildJobQuery(JobSearchParams{SortBy: tc.sortBy})
		if !strings.Contains(q, tc.want) {
			t.Fatalf("sortBy=%q: missing %q in %s", tc.sortBy, tc.want, q)
		}
		if strings.Count(q, "sort=") != 1 {
			t.Fatalf("sortBy=%q: expected exactly one sort fragment: %s", tc.sortBy, q)
		}
	}
}

func TestBuildJobQuery_Idempotent(t *testing.T) {
	p := JobSearchParams{
		Title:            "Backend Engineer",
		Location:         "Berlin",
		RemoteOnly:       true,
		JobTypes:         []string{"full_time"},
		ExperienceLevels: []string{"mid", "senior"},
		Skills:           []string{"Go"},
		Salary:           SalaryBounds{Min: 60000},
		SortBy:           "salary-high",
		Page:             3,
		PageSize:         25,
	}
	if BuildJobQuery(p) != BuildJobQuery(p) {
		t.Fatalf("identical input must yield byte-identical output")
	}
}

func TestBuildCompanyQuery(t *testing.T) {
	q := BuildCompanyQuery(CompanySearchParams{
		Name:       "Acme",
		Industries: []string{"Software", "Finance"},
		SortBy:     "jobs-count",
	})

	for _, want := range []string{
		"pagination[page]=1",
		"pagination[pageSize]=10",
		"filters[name][$containsi]=Acme",
		"filters[industry][name][$eq]=Software",
		"filters[industry][name][$eq]=Finance",
		"sort=jobs.count:desc",
		"populate[0]=logo",
		"populate[1]=industry",
		"populate[2]=jobs",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q: %s", want, q)
		}
	}

	if !strings.Contains(BuildCompanyQuery(CompanySearchParams{}), "sort=name:asc") {
		t.Fatalf("default company sort must be name:asc")
	}
}

func TestBuildSkillQuery(t *testing.T) {
	q := BuildSkillQuery(SkillSearchParams{Name: "go", Category: 2})

	for _, want := range []string{
		"pagination[pageSize]=50",
		"filters[name][$containsi]=go",
		"filters[category][id][$eq]=2",
		"sort=name:asc",
		"populate[0]=category",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q: %s", want, q)
		}
	}
}

func TestBuildNotificationQuery(t *testing.T) {
	q := BuildNotificationQuery(NotificationListParams{UserID: 12, OnlyUnread: true})

	for _, want := range []string{
		"filters[users_permissions_user][id][$eq]=12",
		"filters[isRead][$eq]=false",
		"sort=createdAt:desc",
		"populate[0]=job",
		"populate[1]=job_application",
	} {
		if !strings.Contains(q, want) {
			t.Fatalf("query missing %q: %s", want, q)
		}
	}

	if strings.Contains(BuildNotificationQuery(NotificationListParams{UserID: 12}), "isRead") {
		t.Fatalf("unread filter must be opt-in")
	}
}
