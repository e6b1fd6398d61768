package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"careerease/internal/domain/job"
	"careerease/internal/domain/matching"
	"careerease/internal/domain/user"
	"careerease/internal/infrastructure/embedding"
)

type fakeLocations struct {
	codes map[string]string
	calls int
}

func (f *fakeLocations) FindLocationCode(_ context.Context, name string) (string, error) {
	f.calls++
	if c, ok := f.codes[name]; ok {
		return c, nil
	}
	return "", errors.New("location not found")
}

type fakeSearcher struct {
	jobs  []job.Posting
	err   error
	codes []string
}

func (f *fakeSearcher) Search(_ context.Context, code string) ([]job.Posting, error) {
	f.codes = append(f.codes, code)
	return f.jobs, f.err
}

type fakeSnapshot struct {
	jobs   []job.Posting
	err    error
	limits []int
}

func (f *fakeSnapshot) ListSnapshot(_ context.Context, limit int) ([]job.Posting, error) {
	f.limits = append(f.limits, limit)
	return f.jobs, f.err
}

type fakeRanker struct {
	err      error
	received []job.Posting
	calls    int
}

func (f *fakeRanker) Rank(_ context.Context, _ user.Profile, candidates []job.Posting) ([]matching.ScoredCandidate, error) {
	f.calls++
	f.received = candidates
	if f.err != nil {
		return nil, f.err
	}
	out := make([]matching.ScoredCandidate, 0, len(candidates))
	for i, c := range candidates {
		if i == 5 {
			break
		}
		out = append(out, matching.ScoredCandidate{Job: c, Score: 1 - float64(i)*0.1})
	}
	return out, nil
}

type memoryCache struct {
	m map[string]any
}

func newMemoryCache() *memoryCache { return &memoryCache{m: map[string]any{}} }

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := c.m[key]
	if !ok {
		return false, nil
	}
	dst, ok := out.(*[]job.Posting)
	if !ok {
		return false, nil
	}
	*dst = v.([]job.Posting)
	return true, nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.m[key] = value
	return nil
}

// DeleteByPattern supports the trailing-"*" patterns the usecases issue.
func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.m {
		if k == pattern || (prefix != pattern && strings.HasPrefix(k, prefix)) {
			delete(c.m, k)
		}
	}
	return nil
}

func pythonProfile(location string) user.Profile {
	return user.Profile{
		Skills:             []string{"python"},
		YearsOfExperience:  3,
		CareerGoal:         "Software Engineer",
		EducationLevel:     "Bachelor's Degree",
		LocationPreference: location,
	}
}

func postings(n int) []job.Posting {
	out := make([]job.Posting, n)
	for i := range out {
		out[i] = job.Posting{ExternalID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("job %d", i)}
	}
	return out
}

func TestRecommend_UnknownLocationUsesDefault(t *testing.T) {
	locs := &fakeLocations{codes: map[string]string{"United Kingdom": "gb"}}
	search := &fakeSearcher{jobs: postings(3)}
	uc := NewRecommendationUsecase(locs, search, &fakeSnapshot{}, &fakeRanker{}, nil, nil, RecommendationOptions{})

	res, err := uc.Recommend(context.Background(), pythonProfile("Nowhereland"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(search.codes) != 1 || search.codes[0] != "us" {
		t.Fatalf("expected search with us, got %v", search.codes)
	}
	if !res.Found || res.Source != SourceLive || res.LocationCode != "us" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := uc.Recommend(context.Background(), pythonProfile("United Kingdom")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if search.codes[1] != "gb" {
		t.Fatalf("expected search with gb, got %v", search.codes)
	}
}

func TestRecommend_SnapshotFallbackCapped(t *testing.T) {
	search := &fakeSearcher{err: errors.New("adzuna down")}
	snap := &fakeSnapshot{jobs: postings(150)}
	ranker := &fakeRanker{}
	uc := NewRecommendationUsecase(nil, search, snap, ranker, nil, nil, RecommendationOptions{SnapshotLimit: 500})

	res, err := uc.Recommend(context.Background(), pythonProfile("United States"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != SourceSnapshot {
		t.Fatalf("expected snapshot source, got %q", res.Source)
	}
	if len(snap.limits) != 1 || snap.limits[0] != 100 {
		t.Fatalf("expected snapshot limit 100, got %v", snap.limits)
	}
	if len(ranker.received) != 100 {
		t.Fatalf("expected 100 candidates ranked, got %d", len(ranker.received))
	}
	if len(res.Jobs) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(res.Jobs))
	}
}

func TestRecommend_NoJobsAnywhere(t *testing.T) {
	ranker := &fakeRanker{}
	uc := NewRecommendationUsecase(nil, &fakeSearcher{}, &fakeSnapshot{}, ranker, nil, nil, RecommendationOptions{})

	res, err := uc.Recommend(context.Background(), pythonProfile("United States"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Found || len(res.Jobs) != 0 {
		t.Fatalf("expected not found, got %+v", res)
	}
	if ranker.calls != 0 {
		t.Fatalf("ranker should not run on empty corpus")
	}
}

func TestRecommend_InvalidProfile(t *testing.T) {
	search := &fakeSearcher{jobs: postings(1)}
	uc := NewRecommendationUsecase(nil, search, &fakeSnapshot{}, &fakeRanker{}, nil, nil, RecommendationOptions{})

	_, err := uc.Recommend(context.Background(), user.Profile{CareerGoal: "Software Engineer"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, matching.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile in chain, got %v", err)
	}
	if len(search.codes) != 0 {
		t.Fatalf("search should not run for invalid profile")
	}
}

func TestRecommend_EmbeddingUnavailable(t *testing.T) {
	ranker := &fakeRanker{err: fmt.Errorf("%w: timeout", matching.ErrEmbeddingUnavailable)}
	uc := NewRecommendationUsecase(nil, &fakeSearcher{jobs: postings(2)}, &fakeSnapshot{}, ranker, nil, nil, RecommendationOptions{})

	_, err := uc.Recommend(context.Background(), pythonProfile("United States"))
	if !errors.Is(err, matching.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
}

func TestRecommend_SearchCache(t *testing.T) {
	cache := newMemoryCache()
	search := &fakeSearcher{jobs: postings(2)}
	uc := NewRecommendationUsecase(nil, search, &fakeSnapshot{}, &fakeRanker{}, cache, nil, RecommendationOptions{})

	for i := 0; i < 3; i++ {
		if _, err := uc.Recommend(context.Background(), pythonProfile("")); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if len(search.codes) != 1 {
		t.Fatalf("expected one live search, got %d", len(search.codes))
	}
	if _, ok := cache.m[JobsSearchCacheKey("us")]; !ok {
		t.Fatalf("expected cached search for us")
	}
}

func TestRecommend_HashEmbedderRanksRelevantFirst(t *testing.T) {
	jobs := []job.Posting{
		{Title: "Graphic Designer", Description: "Adobe tools"},
		{Title: "Python Backend Engineer", Description: "build APIs with python"},
	}
	ranker := matching.NewRanker(embedding.NewHashEmbedder(0), 5)
	uc := NewRecommendationUsecase(nil, &fakeSearcher{jobs: jobs}, &fakeSnapshot{}, ranker, nil, nil, RecommendationOptions{})

	res, err := uc.Recommend(context.Background(), pythonProfile("United States"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 2 || res.Jobs[0].Title != "Python Backend Engineer" {
		t.Fatalf("expected python job first, got %+v", res.Jobs)
	}
	if res.Jobs[0].Score <= res.Jobs[1].Score {
		t.Fatalf("expected descending scores, got %v then %v", res.Jobs[0].Score, res.Jobs[1].Score)
	}
}

func TestProjectJob_Defaults(t *testing.T) {
	got := ProjectJob(matching.ScoredCandidate{Job: job.Posting{}, Score: 0.25}, 3)

	want := RecommendedJob{
		Title:                         "Unknown Title",
		Company:                       "Unknown",
		Location:                      "Remote",
		SalaryCurrency:                "USD",
		ContractTime:                  "Unknown",
		RequiredSkills:                "N/A",
		Description:                   "No description available",
		PostedDate:                    "Unknown",
		ExpiryDate:                    "Unknown",
		RecommendedForExperienceLevel: "3+ years",
		Score:                         0.25,
	}
	if got != want {
		t.Fatalf("ProjectJob() = %+v, want %+v", got, want)
	}
}

func TestProjectJob_Populated(t *testing.T) {
	created := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	expires := created.AddDate(0, 0, 30)
	salaryMin, salaryMax := 80000.0, 120000.0

	got := ProjectJob(matching.ScoredCandidate{Job: job.Posting{
		Title:        "Software Engineer",
		Company:      "Tech Corp",
		Location:     "New York, NY",
		Description:  "Looking for a skilled software engineer...",
		SalaryMin:    &salaryMin,
		SalaryMax:    &salaryMax,
		Currency:     "USD",
		ContractTime: "full_time",
		Tags:         "python,javascript,react",
		Created:      &created,
		Expires:      &expires,
		ApplyURL:     "https://example.com/apply",
	}, Score: 0.9}, 0)

	if got.RequiredSkills != "python, javascript, react" {
		t.Fatalf("unexpected required skills %q", got.RequiredSkills)
	}
	if got.PostedDate != "2024-05-01" || got.ExpiryDate != "2024-05-31" {
		t.Fatalf("unexpected dates %q %q", got.PostedDate, got.ExpiryDate)
	}
	if got.SalaryMin == nil || *got.SalaryMin != 80000 {
		t.Fatalf("expected salary min 80000")
	}
	if got.RecommendedForExperienceLevel != "0+ years" {
		t.Fatalf("unexpected experience level %q", got.RecommendedForExperienceLevel)
	}
	if got.ApplicationURL != "https://example.com/apply" {
		t.Fatalf("unexpected application url %q", got.ApplicationURL)
	}
}
