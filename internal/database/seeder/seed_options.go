package seeder

import (
	"context"
	"fmt"

	"careerease/internal/database"
	"careerease/internal/domain/catalog"
)

type EducationLevelsSeeder struct{}

func (EducationLevelsSeeder) Name() string { return "education_levels" }

func (EducationLevelsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	return seedNamed(ctx, db, "education_levels", catalog.EducationLevels)
}

type CareerGoalsSeeder struct{}

func (CareerGoalsSeeder) Name() string { return "career_goals" }

func (CareerGoalsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	return seedNamed(ctx, db, "career_goals", catalog.CareerGoals)
}

// seedNamed inserts names into a (name, position) table, keeping rows that
// already exist.
func seedNamed(ctx context.Context, db database.DB, table string, names []string) (int64, error) {
	if err := requireColumns(ctx, db, table, "name", "position"); err != nil {
		return 0, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	q := fmt.Sprintf(`INSERT INTO %s (name, position) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, table)
	var inserted int64
	for i, n := range names {
		affected, err := tx.Exec(ctx, q, n, i)
		if err != nil {
			return 0, err
		}
		inserted += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}
