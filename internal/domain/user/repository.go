package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user preferences not found")

type Repository interface {
	CreateAssessment(ctx context.Context, a Assessment) (uuid.UUID, error)
	GetPreferencesByEmail(ctx context.Context, email string) (StoredPreferences, error)
}
