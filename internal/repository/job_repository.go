package repository

import (
	"context"
	"fmt"

	"careerease/internal/database"
	"careerease/internal/domain/job"
)

const maxSnapshotLimit = 1000

type JobRepository interface {
	ListSnapshot(ctx context.Context, limit int) ([]job.Posting, error)
	UpsertJobs(ctx context.Context, jobs []job.Posting) (int, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ListSnapshot returns the most recently fetched postings, newest first.
func (r *PostgresJobRepository) ListSnapshot(ctx context.Context, limit int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > maxSnapshotLimit {
		limit = maxSnapshotLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(external_id, ''), title, description, company, location,
		        salary_min, salary_max, currency, contract_time, tags, created, expires, apply_url
		 FROM jobs
		 ORDER BY fetched_at DESC, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		if err := rows.Scan(
			&p.ID, &p.ExternalID, &p.Title, &p.Description, &p.Company, &p.Location,
			&p.SalaryMin, &p.SalaryMax, &p.Currency, &p.ContractTime, &p.Tags,
			&p.Created, &p.Expires, &p.ApplyURL,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertJobs inserts or refreshes postings keyed by external id. Postings
// without an external id are skipped.
func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, jobs []job.Posting) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n := 0
	for _, p := range jobs {
		if p.ExternalID == "" {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (external_id, title, description, company, location, salary_min, salary_max,
			                   currency, contract_time, tags, created, expires, apply_url, fetched_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
			 ON CONFLICT (external_id) DO UPDATE SET
			   title = EXCLUDED.title,
			   description = EXCLUDED.description,
			   company = EXCLUDED.company,
			   location = EXCLUDED.location,
			   salary_min = EXCLUDED.salary_min,
			   salary_max = EXCLUDED.salary_max,
			   currency = EXCLUDED.currency,
			   contract_time = EXCLUDED.contract_time,
			   tags = EXCLUDED.tags,
			   created = EXCLUDED.created,
			   expires = EXCLUDED.expires,
			   apply_url = EXCLUDED.apply_url,
			   fetched_at = now()`,
			p.ExternalID, p.Title, p.Description, p.Company, p.Location, p.SalaryMin, p.SalaryMax,
			p.Currency, p.ContractTime, p.Tags, p.Created, p.Expires, p.ApplyURL,
		)
		if err != nil {
			return 0, fmt.Errorf("upsert job %s: %w", p.ExternalID, err)
		}
		n++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
