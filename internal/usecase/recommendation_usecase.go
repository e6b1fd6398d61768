package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"careerease/internal/domain/job"
	"careerease/internal/domain/matching"
	"careerease/internal/domain/user"
)

const (
	defaultSnapshotLimit = 100
	defaultLocationCode  = "us"
	searchTimeout        = 20 * time.Second
)

const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

type LocationResolver interface {
	FindLocationCode(ctx context.Context, name string) (string, error)
}

type JobSearcher interface {
	Search(ctx context.Context, countryCode string) ([]job.Posting, error)
}

type SnapshotSource interface {
	ListSnapshot(ctx context.Context, limit int) ([]job.Posting, error)
}

type Ranker interface {
	Rank(ctx context.Context, p user.Profile, candidates []job.Posting) ([]matching.ScoredCandidate, error)
}

type RecommendedJob struct {
	Title                         string
	Company                       string
	Location                      string
	SalaryMin                     *float64
	SalaryMax                     *float64
	SalaryCurrency                string
	ContractTime                  string
	RequiredSkills                string
	Description                   string
	ApplicationURL                string
	PostedDate                    string
	ExpiryDate                    string
	RecommendedForExperienceLevel string
	Score                         float64
}

type RecommendationResult struct {
	Found        bool
	LocationCode string
	Source       string
	Jobs         []RecommendedJob
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, p user.Profile) (RecommendationResult, error)
}

type RecommendationOptions struct {
	DefaultLocation string
	SnapshotLimit   int
	CacheTTL        time.Duration
}

type Recommendation struct {
	locations LocationResolver
	searcher  JobSearcher
	snapshot  SnapshotSource
	ranker    Ranker
	cache     SearchCache
	logger    *log.Logger

	defaultLocation string
	snapshotLimit   int
	cacheTTL        time.Duration
}

func NewRecommendationUsecase(locations LocationResolver, searcher JobSearcher, snapshot SnapshotSource, ranker Ranker, cache SearchCache, logger *log.Logger, opts RecommendationOptions) *Recommendation {
	def := strings.ToLower(strings.TrimSpace(opts.DefaultLocation))
	if def == "" {
		def = defaultLocationCode
	}
	limit := opts.SnapshotLimit
	if limit <= 0 || limit > defaultSnapshotLimit {
		limit = defaultSnapshotLimit
	}
	return &Recommendation{
		locations:       locations,
		searcher:        searcher,
		snapshot:        snapshot,
		ranker:          ranker,
		cache:           cache,
		logger:          logger,
		defaultLocation: def,
		snapshotLimit:   limit,
		cacheTTL:        opts.CacheTTL,
	}
}

// Recommend resolves the profile location, gathers candidates from the live
// search or the stored snapshot, and returns the ranked projection. An empty
// corpus is reported through Found, not an error.
func (u *Recommendation) Recommend(ctx context.Context, p user.Profile) (RecommendationResult, error) {
	if err := matching.ValidateProfile(p); err != nil {
		return RecommendationResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	code := u.resolveLocation(ctx, p.LocationPreference)
	u.logf("[Recommend] searching jobs for country code: %s", code)

	source := SourceLive
	candidates := u.liveSearch(ctx, code)
	if len(candidates) == 0 {
		source = SourceSnapshot
		candidates = u.loadSnapshot(ctx)
	}
	if len(candidates) == 0 {
		return RecommendationResult{Found: false, LocationCode: code, Jobs: []RecommendedJob{}}, nil
	}

	ranked, err := u.ranker.Rank(ctx, p, candidates)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidProfile) {
			return RecommendationResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		u.logf("[Recommend] ranking failed source=%s candidates=%d: %v", source, len(candidates), err)
		return RecommendationResult{}, err
	}

	out := make([]RecommendedJob, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, ProjectJob(c, p.YearsOfExperience))
	}
	return RecommendationResult{Found: true, LocationCode: code, Source: source, Jobs: out}, nil
}

func (u *Recommendation) resolveLocation(ctx context.Context, name string) string {
	if u.locations == nil || strings.TrimSpace(name) == "" {
		return u.defaultLocation
	}
	code, err := u.locations.FindLocationCode(ctx, name)
	if err != nil {
		return u.defaultLocation
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return u.defaultLocation
	}
	return code
}

func (u *Recommendation) liveSearch(ctx context.Context, code string) []job.Posting {
	if u.searcher == nil {
		return nil
	}

	key := JobsSearchCacheKey(code)
	if u.cache != nil {
		var cached []job.Posting
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit && len(cached) > 0 {
			u.logf("[Recommend] search cache hit code=%s jobs=%d", code, len(cached))
			return cached
		}
	}

	sctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	jobs, err := u.searcher.Search(sctx, code)
	if err != nil {
		u.logf("[Recommend] live search failed code=%s: %v", code, err)
		return nil
	}
	u.logf("[Recommend] live search returned %d jobs", len(jobs))

	if u.cache != nil && len(jobs) > 0 {
		if err := u.cache.SetJSON(ctx, key, jobs, u.cacheTTL); err != nil {
			u.logf("[Recommend] search cache set failed code=%s: %v", code, err)
		}
	}
	return jobs
}

func (u *Recommendation) loadSnapshot(ctx context.Context) []job.Posting {
	if u.snapshot == nil {
		return nil
	}
	jobs, err := u.snapshot.ListSnapshot(ctx, u.snapshotLimit)
	if err != nil {
		u.logf("[Recommend] snapshot load failed: %v", err)
		return nil
	}
	if len(jobs) > u.snapshotLimit {
		jobs = jobs[:u.snapshotLimit]
	}
	u.logf("[Recommend] snapshot returned %d jobs", len(jobs))
	return jobs
}

func (u *Recommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

// ProjectJob maps a scored posting to its presentation form, filling
// defaults for every missing field.
func ProjectJob(c matching.ScoredCandidate, years int) RecommendedJob {
	j := c.Job
	return RecommendedJob{
		Title:                         orDefault(j.Title, "Unknown Title"),
		Company:                       orDefault(j.Company, "Unknown"),
		Location:                      orDefault(j.Location, "Remote"),
		SalaryMin:                     j.SalaryMin,
		SalaryMax:                     j.SalaryMax,
		SalaryCurrency:                orDefault(j.Currency, "USD"),
		ContractTime:                  orDefault(j.ContractTime, "Unknown"),
		RequiredSkills:                requiredSkills(j.Tags),
		Description:                   orDefault(j.Description, "No description available"),
		ApplicationURL:                strings.TrimSpace(j.ApplyURL),
		PostedDate:                    formatDate(j.Created),
		ExpiryDate:                    formatDate(j.Expires),
		RecommendedForExperienceLevel: fmt.Sprintf("%d+ years", years),
		Score:                         c.Score,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func requiredSkills(tags string) string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return "N/A"
	}
	return strings.Join(out, ", ")
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "Unknown"
	}
	return t.UTC().Format("2006-01-02")
}
