package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"careerease/internal/config"
	"careerease/internal/database"
	"careerease/internal/database/migration"
	dbpostgres "careerease/internal/database/postgres"
	"careerease/internal/database/seeder"
	"careerease/internal/domain/matching"
	"careerease/internal/infrastructure/adzuna"
	"careerease/internal/infrastructure/cache"
	"careerease/internal/infrastructure/countries"
	"careerease/internal/infrastructure/embedding"
	"careerease/internal/infrastructure/skills"
	"careerease/internal/repository"
	"careerease/internal/usecase"
)

// Container owns the process-wide dependencies.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Embedder       embedding.Provider
	Ranker         *matching.Ranker
	Recommendation *usecase.Recommendation
	Assessment     *usecase.Assessment
	Catalog        *usecase.Catalog
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	embedder, err := embedding.New(ctx, cfg.Embedding, redis, 0, logger)
	if err != nil {
		_ = redis.Close()
		_ = db.Close()
		return nil, fmt.Errorf("embedding provider: %w", err)
	}

	users := repository.NewPostgresUserRepository(db)
	catalogs := repository.NewPostgresCatalogRepository(db)
	jobs := repository.NewPostgresJobRepository(db)

	searcher := adzuna.NewClient(cfg.Adzuna, logger)
	skillSource := skills.NewClient(cfg.Catalog.APILayerKey, cfg.Catalog.APILayerBaseURL, logger)
	locationSource := countries.NewClient(cfg.Catalog.CountriesBaseURL, logger)

	ranker := matching.NewRanker(embedder, cfg.Recommendation.TopK)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redis,
		Embedder: embedder,
		Ranker:   ranker,
		Recommendation: usecase.NewRecommendationUsecase(
			catalogs, searcher, jobs, ranker, redis, logger,
			usecase.RecommendationOptions{
				DefaultLocation: cfg.Recommendation.DefaultLocation,
				SnapshotLimit:   cfg.Recommendation.SnapshotLimit,
				CacheTTL:        cfg.Redis.TTL,
			},
		),
		Assessment: usecase.NewAssessmentUsecase(users),
		Catalog: usecase.NewCatalogUsecase(
			catalogs, jobs, skillSource, locationSource, searcher, redis, logger,
			cfg.Recommendation.DefaultLocation,
		),
	}, nil
}

// Prepare applies pending migrations and runs the seeders.
func (c *Container) Prepare(ctx context.Context) error {
	n, err := migration.Runner{}.Run(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if n > 0 {
		c.Logger.Printf("[DB] applied %d migration(s)", n)
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}).Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
