package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"careerease/internal/database"
	"careerease/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var _ user.Repository = (*PostgresUserRepository)(nil)

// CreateAssessment stores the assessment and its derived preferences row in
// one transaction.
func (r *PostgresUserRepository) CreateAssessment(ctx context.Context, a user.Assessment) (uuid.UUID, error) {
	if r == nil || r.db == nil {
		return uuid.Nil, errors.New("nil db")
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	email := strings.TrimSpace(a.Email)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	id := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, name, email, phone, current_skills, target_skills, years_of_experience, career_goal, education_level, location_preference, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, a.Name, email, a.Phone, nonNil(a.CurrentSkills), nonNil(a.TargetSkills),
		a.YearsOfExperience, a.CareerGoal, a.EducationLevel, a.LocationPreference, createdAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	p := a.Preferences()
	_, err = tx.Exec(ctx,
		`INSERT INTO user_preferences (user_id, email, skills, years_of_experience, career_goal, education_level, location_preference, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, email, nonNil(p.Skills), p.YearsOfExperience, p.CareerGoal, p.EducationLevel, p.LocationPreference, createdAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert preferences: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetPreferencesByEmail returns the most recent preferences for email,
// matched case-insensitively.
func (r *PostgresUserRepository) GetPreferencesByEmail(ctx context.Context, email string) (user.StoredPreferences, error) {
	if r == nil || r.db == nil {
		return user.StoredPreferences{}, errors.New("nil db")
	}

	var out user.StoredPreferences
	row := r.db.QueryRow(ctx,
		`SELECT user_id, email, skills, years_of_experience, career_goal, education_level, location_preference
		 FROM user_preferences
		 WHERE lower(email) = lower($1)
		 ORDER BY created_at DESC
		 LIMIT 1`,
		strings.TrimSpace(email),
	)
	err := row.Scan(
		&out.UserID,
		&out.Email,
		&out.Profile.Skills,
		&out.Profile.YearsOfExperience,
		&out.Profile.CareerGoal,
		&out.Profile.EducationLevel,
		&out.Profile.LocationPreference,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.StoredPreferences{}, user.ErrNotFound
		}
		return user.StoredPreferences{}, err
	}
	if out.Profile.Skills == nil {
		out.Profile.Skills = []string{}
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
