package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerease/internal/database"
	"careerease/internal/domain/catalog"

	"github.com/jackc/pgx/v5"
)

var ErrLocationNotFound = errors.New("location not found")

type CatalogRepository interface {
	ListSkills(ctx context.Context) ([]catalog.Skill, error)
	ReplaceSkills(ctx context.Context, skills []catalog.Skill) error
	ListLocations(ctx context.Context) ([]catalog.Location, error)
	ReplaceLocations(ctx context.Context, locations []catalog.Location) error
	FindLocationCode(ctx context.Context, name string) (string, error)
	ListEducationLevels(ctx context.Context) ([]string, error)
	ListCareerGoals(ctx context.Context) ([]string, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListSkills(ctx context.Context) ([]catalog.Skill, error) {
	names, err := r.listNames(ctx, `SELECT name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Skill, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Skill{Name: n})
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ReplaceSkills(ctx context.Context, skills []catalog.Skill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM skills`); err != nil {
		return err
	}
	for _, s := range skills {
		if _, err := tx.Exec(ctx, `INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, s.Name); err != nil {
			return fmt.Errorf("insert skill %q: %w", s.Name, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *PostgresCatalogRepository) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT name, code, region FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Location, 0)
	for rows.Next() {
		var l catalog.Location
		if err := rows.Scan(&l.Name, &l.Code, &l.Region); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ReplaceLocations(ctx context.Context, locations []catalog.Location) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM locations`); err != nil {
		return err
	}
	for _, l := range locations {
		_, err := tx.Exec(ctx,
			`INSERT INTO locations (code, name, region) VALUES ($1, $2, $3)
			 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, region = EXCLUDED.region`,
			l.Code, l.Name, l.Region,
		)
		if err != nil {
			return fmt.Errorf("insert location %q: %w", l.Code, err)
		}
	}
	return tx.Commit(ctx)
}

// FindLocationCode matches the location name exactly first, then
// case-insensitively.
func (r *PostgresCatalogRepository) FindLocationCode(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrLocationNotFound
	}

	var code string
	err := r.db.QueryRow(ctx,
		`SELECT code FROM locations
		 WHERE name = $1 OR lower(name) = lower($1)
		 ORDER BY (name = $1) DESC
		 LIMIT 1`,
		name,
	).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrLocationNotFound
		}
		return "", err
	}
	return code, nil
}

func (r *PostgresCatalogRepository) ListEducationLevels(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM education_levels ORDER BY position ASC, name ASC`)
}

func (r *PostgresCatalogRepository) ListCareerGoals(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM career_goals ORDER BY position ASC, name ASC`)
}

func (r *PostgresCatalogRepository) listNames(ctx context.Context, q string) ([]string, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
