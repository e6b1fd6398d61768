package seeder

import (
	"context"
	"time"

	"careerease/internal/database"
)

// SampleJobSeeder puts one posting into an empty jobs table so the snapshot
// fallback has something to rank before the first refresh.
type SampleJobSeeder struct{}

func (SampleJobSeeder) Name() string { return "sample_jobs" }

func (SampleJobSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := requireColumns(ctx, db, "jobs", "id", "external_id", "title", "description", "company", "location", "salary_min", "salary_max", "currency", "contract_time", "tags", "created", "expires", "apply_url"); err != nil {
		return 0, err
	}

	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	return db.Exec(
		ctx,
		`INSERT INTO jobs (external_id, title, description, company, location, salary_min, salary_max, currency, contract_time, tags, created, expires, apply_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (external_id) DO NOTHING`,
		"sample-software-engineer",
		"Software Engineer",
		"Looking for a skilled software engineer...",
		"Tech Corp",
		"New York, NY",
		80000.0,
		120000.0,
		"USD",
		"full_time",
		"python,javascript,react",
		now,
		now.AddDate(0, 0, 30),
		"https://example.com/apply",
	)
}
