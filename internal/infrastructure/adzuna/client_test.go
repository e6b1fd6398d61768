package adzuna

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerease/internal/config"
)

const sampleResponse = `{
  "count": 2,
  "results": [
    {
      "id": "123",
      "title": "Python Backend Engineer",
      "description": "build APIs with python",
      "company": {"display_name": "Acme"},
      "location": {"display_name": "New York, NY"},
      "category": {"tag": "it-jobs", "label": "IT Jobs"},
      "salary_min": 90000,
      "salary_max": 120000,
      "contract_time": "full_time",
      "redirect_url": "https://example.com/apply/123",
      "created": "2024-05-01T10:00:00Z"
    },
    {
      "id": "456",
      "title": "Graphic Designer",
      "description": "Adobe tools",
      "company": {},
      "location": {},
      "created": "yesterday"
    }
  ]
}`

func TestSearch_MapsResults(t *testing.T) {
	var gotPath, gotWhat, gotAppID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotWhat = r.URL.Query().Get("what")
		gotAppID = r.URL.Query().Get("app_id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(config.AdzunaConfig{AppID: "id", AppKey: "key", Query: "software engineer", BaseURL: srv.URL}, nil)
	jobs, err := c.Search(context.Background(), " GB ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/gb/search/1" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotWhat != "software engineer" || gotAppID != "id" {
		t.Fatalf("unexpected query what=%q app_id=%q", gotWhat, gotAppID)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Company != "Acme" || j.Location != "New York, NY" || j.Tags != "it-jobs" {
		t.Fatalf("unexpected mapping: %+v", j)
	}
	if j.SalaryMin == nil || *j.SalaryMin != 90000 {
		t.Fatalf("expected salary_min 90000")
	}
	if j.Created == nil || j.Created.Format("2006-01-02") != "2024-05-01" {
		t.Fatalf("expected parsed created date, got %v", j.Created)
	}
	if jobs[1].Created != nil || jobs[1].SalaryMin != nil {
		t.Fatalf("expected nil optional fields for sparse result")
	}
}

func TestSearch_NotConfigured(t *testing.T) {
	c := NewClient(config.AdzunaConfig{}, nil)
	if _, err := c.Search(context.Background(), "us"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(config.AdzunaConfig{AppID: "id", AppKey: "key", BaseURL: srv.URL}, nil)
	if _, err := c.Search(context.Background(), "us"); err == nil {
		t.Fatalf("expected error on 401")
	}
}
