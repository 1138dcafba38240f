package cms

import (
	"encoding/json"
	"reflect"
	"testing"

	"jobboard/internal/domain"
)

const wrappedJob = `{
	"id": 4,
	"attributes": {
		"Title": "Backend Engineer",
		"slug": "backend-engineer",
		"location": "Berlin",
		"isRemote": true,
		"jobType": "full_time",
		"experience": "senior",
		"jobStatus": "published",
		"salaryRange": {"min": 60000, "max": 90000, "currency": "EUR"},
		"company": {"data": {"id": 2, "attributes": {"name": "Acme", "location": "Berlin"}}},
		"skills": {"data": [
			{"id": 7, "attributes": {"name": "Go"}},
			{"id": 8, "attributes": {"name": "PostgreSQL"}}
		]},
		"tags": {"data": []}
	}
}`

const flatJob = `{
	"id": 4,
	"Title": "Backend Engineer",
	"slug": "backend-engineer",
	"location": "Berlin",
	"isRemote": true,
	"jobType": "full_time",
	"experience": "senior",
	"jobStatus": "published",
	"salaryRange": {"min": 60000, "max": 90000, "currency": "EUR"},
	"company": {"id": 2, "name": "Acme", "location": "Berlin"},
	"skills": [
		{"id": 7, "name": "Go"},
		{"id": 8, "name": "PostgreSQL"}
	],
	"tags": []
}`

func TestDecodeEntry_BothShapesMatch(t *testing.T) {
	wrapped, err := decodeEntry[domain.Job](json.RawMessage(wrappedJob))
	if err != nil {
		t.Fatalf("wrapped decode failed: %v", err)
	}
	flat, err := decodeEntry[domain.Job](json.RawMessage(flatJob))
	if err != nil {
		t.Fatalf("flat decode failed: %v", err)
	}

	if !reflect.DeepEqual(wrapped, flat) {
		t.Fatalf("shapes diverged:\nwrapped: %+v\nflat: %+v", wrapped, flat)
	}

	if wrapped.ID != 4 || wrapped.Slug != "backend-engineer" {
		t.Fatalf("unexpected job identity: %+v", wrapped)
	}
	if wrapped.Company == nil || wrapped.Company.ID != 2 || wrapped.Company.Name != "Acme" {
		t.Fatalf("company relation not normalized: %+v", wrapped.Company)
	}
	if len(wrapped.Skills) != 2 || wrapped.Skills[1].Name != "PostgreSQL" {
		t.Fatalf("skills relation not normalized: %+v", wrapped.Skills)
	}
	if wrapped.SalaryRange.Currency != "EUR" || wrapped.SalaryRange.Max != 90000 {
		t.Fatalf("salary range mangled: %+v", wrapped.SalaryRange)
	}
}

func TestDecodeEntry_NullRelation(t *testing.T) {
	raw := `{"id": 1, "attributes": {"Title": "X", "company": {"data": null}}}`
	job, err := decodeEntry[domain.Job](json.RawMessage(raw))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if job.Company != nil {
		t.Fatalf("null relation must normalize to nil, got %+v", job.Company)
	}
}

func TestDecodeEntries_MixedShapes(t *testing.T) {
	raw := `[
		{"id": 1, "attributes": {"name": "Go"}},
		{"id": 2, "name": "SQL"}
	]`
	skills, err := decodeEntries[domain.Skill](json.RawMessage(raw))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].ID != 1 || skills[0].Name != "Go" || skills[1].ID != 2 || skills[1].Name != "SQL" {
		t.Fatalf("unexpected skills: %+v", skills)
	}
}

func TestDecodeEntries_Null(t *testing.T) {
	skills, err := decodeEntries[domain.Skill](nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected empty slice, got %+v", skills)
	}
}
