package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"careerease/internal/domain/catalog"
	"careerease/internal/domain/job"
	"careerease/internal/repository"
)

type SkillSource interface {
	FetchAll(ctx context.Context) ([]catalog.Skill, error)
}

type LocationSource interface {
	FetchAll(ctx context.Context) ([]catalog.Location, error)
}

type JobStore interface {
	UpsertJobs(ctx context.Context, jobs []job.Posting) (int, error)
	Count(ctx context.Context) (int, error)
}

type AvailableOptions struct {
	Skills          []string
	Locations       []string
	EducationLevels []string
	CareerGoals     []string
}

type CatalogUsecase interface {
	AvailableOptions(ctx context.Context) (AvailableOptions, error)
	Skills(ctx context.Context) ([]catalog.Skill, error)
	Locations(ctx context.Context) ([]catalog.Location, error)
	RefreshSkills(ctx context.Context) (int, error)
	RefreshLocations(ctx context.Context) (int, error)
	RefreshJobSnapshot(ctx context.Context) (int, error)
	Initialize(ctx context.Context)
}

type Catalog struct {
	repo      repository.CatalogRepository
	jobs      JobStore
	skills    SkillSource
	locations LocationSource
	searcher  JobSearcher
	cache     SearchCache
	logger    *log.Logger

	defaultLocation string
}

func NewCatalogUsecase(repo repository.CatalogRepository, jobs JobStore, skills SkillSource, locations LocationSource, searcher JobSearcher, cache SearchCache, logger *log.Logger, defaultLocation string) *Catalog {
	def := strings.ToLower(strings.TrimSpace(defaultLocation))
	if def == "" {
		def = defaultLocationCode
	}
	return &Catalog{
		repo:            repo,
		jobs:            jobs,
		skills:          skills,
		locations:       locations,
		searcher:        searcher,
		cache:           cache,
		logger:          logger,
		defaultLocation: def,
	}
}

func (u *Catalog) AvailableOptions(ctx context.Context) (AvailableOptions, error) {
	skills, err := u.repo.ListSkills(ctx)
	if err != nil {
		return AvailableOptions{}, wrapInternal("list skills", err)
	}
	locations, err := u.repo.ListLocations(ctx)
	if err != nil {
		return AvailableOptions{}, wrapInternal("list locations", err)
	}
	levels, err := u.repo.ListEducationLevels(ctx)
	if err != nil {
		return AvailableOptions{}, wrapInternal("list education levels", err)
	}
	goals, err := u.repo.ListCareerGoals(ctx)
	if err != nil {
		return AvailableOptions{}, wrapInternal("list career goals", err)
	}

	out := AvailableOptions{
		Skills:          make([]string, 0, len(skills)),
		Locations:       make([]string, 0, len(locations)),
		EducationLevels: levels,
		CareerGoals:     goals,
	}
	for _, s := range skills {
		out.Skills = append(out.Skills, s.Name)
	}
	for _, l := range locations {
		out.Locations = append(out.Locations, l.Name)
	}
	if out.EducationLevels == nil {
		out.EducationLevels = []string{}
	}
	if out.CareerGoals == nil {
		out.CareerGoals = []string{}
	}
	return out, nil
}

// Skills returns the stored skills, fetching them when the store is empty.
func (u *Catalog) Skills(ctx context.Context) ([]catalog.Skill, error) {
	items, err := u.repo.ListSkills(ctx)
	if err != nil {
		return nil, wrapInternal("list skills", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	if _, err := u.RefreshSkills(ctx); err != nil {
		return nil, err
	}
	if items, err = u.repo.ListSkills(ctx); err != nil {
		return nil, wrapInternal("list skills", err)
	}
	return items, nil
}

// Locations returns the stored locations, fetching them when the store is empty.
func (u *Catalog) Locations(ctx context.Context) ([]catalog.Location, error) {
	items, err := u.repo.ListLocations(ctx)
	if err != nil {
		return nil, wrapInternal("list locations", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	if _, err := u.RefreshLocations(ctx); err != nil {
		return nil, err
	}
	if items, err = u.repo.ListLocations(ctx); err != nil {
		return nil, wrapInternal("list locations", err)
	}
	return items, nil
}

// RefreshSkills replaces the stored skills with a fresh fetch. An empty
// fetch leaves the store untouched.
func (u *Catalog) RefreshSkills(ctx context.Context) (int, error) {
	if u.skills == nil {
		return 0, errors.New("skills source not configured")
	}
	items, err := u.skills.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		u.logf("[Catalog] skills fetch returned nothing; keeping stored set")
		return 0, nil
	}
	if err := u.repo.ReplaceSkills(ctx, items); err != nil {
		return 0, wrapInternal("replace skills", err)
	}
	u.logf("[Catalog] stored %d skills", len(items))
	return len(items), nil
}

func (u *Catalog) RefreshLocations(ctx context.Context) (int, error) {
	if u.locations == nil {
		return 0, errors.New("location source not configured")
	}
	items, err := u.locations.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		u.logf("[Catalog] locations fetch returned nothing; keeping stored set")
		return 0, nil
	}
	if err := u.repo.ReplaceLocations(ctx, items); err != nil {
		return 0, wrapInternal("replace locations", err)
	}
	u.logf("[Catalog] stored %d locations", len(items))
	return len(items), nil
}

// RefreshJobSnapshot stores the current live results for the default
// location so the snapshot fallback stays recent. Every cached live search
// is dropped afterwards.
func (u *Catalog) RefreshJobSnapshot(ctx context.Context) (int, error) {
	if u.searcher == nil || u.jobs == nil {
		return 0, errors.New("job snapshot not configured")
	}
	jobs, err := u.searcher.Search(ctx, u.defaultLocation)
	if err != nil {
		return 0, err
	}
	n, err := u.jobs.UpsertJobs(ctx, jobs)
	if err != nil {
		return 0, wrapInternal("upsert jobs", err)
	}
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, jobsSearchKeyPrefix+"*"); err != nil {
			u.logf("[Catalog] search cache invalidation failed: %v", err)
		}
	}
	total, err := u.jobs.Count(ctx)
	if err != nil {
		u.logf("[Catalog] count jobs failed: %v", err)
	}
	u.logf("[Catalog] snapshot refreshed code=%s upserted=%d total=%d", u.defaultLocation, n, total)
	return n, nil
}

// Initialize fills empty external catalogs. Failures are logged; the
// service starts with whatever is stored.
func (u *Catalog) Initialize(ctx context.Context) {
	if _, err := u.Locations(ctx); err != nil {
		u.logf("[Catalog] initial locations load failed: %v", err)
	}
	if _, err := u.Skills(ctx); err != nil {
		u.logf("[Catalog] initial skills load failed: %v", err)
	}
}

func (u *Catalog) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
