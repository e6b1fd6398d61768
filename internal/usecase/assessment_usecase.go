package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"careerease/internal/domain/user"

	"github.com/google/uuid"
)

type AssessmentInput struct {
	Name               string
	Email              string
	Phone              string
	CurrentSkills      []string
	TargetSkills       []string
	YearsOfExperience  int
	CareerGoal         string
	EducationLevel     string
	LocationPreference string
}

type AssessmentUsecase interface {
	SaveAssessment(ctx context.Context, in AssessmentInput) (uuid.UUID, error)
	GetPreferences(ctx context.Context, email string) (user.Profile, error)
}

type Assessment struct {
	users user.Repository
	now   func() time.Time
}

func NewAssessmentUsecase(users user.Repository) *Assessment {
	return &Assessment{users: users, now: time.Now}
}

func (u *Assessment) SaveAssessment(ctx context.Context, in AssessmentInput) (uuid.UUID, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return uuid.Nil, ErrInvalidInput
	}
	email := normalizeEmail(in.Email)
	if email == "" {
		return uuid.Nil, ErrInvalidInput
	}
	if in.YearsOfExperience < 0 {
		return uuid.Nil, ErrInvalidInput
	}

	a := user.Assessment{
		Name:               name,
		Email:              email,
		Phone:              strings.TrimSpace(in.Phone),
		CurrentSkills:      cleanList(in.CurrentSkills),
		TargetSkills:       cleanList(in.TargetSkills),
		YearsOfExperience:  in.YearsOfExperience,
		CareerGoal:         strings.TrimSpace(in.CareerGoal),
		EducationLevel:     strings.TrimSpace(in.EducationLevel),
		LocationPreference: strings.TrimSpace(in.LocationPreference),
		CreatedAt:          u.now().UTC(),
	}

	id, err := u.users.CreateAssessment(ctx, a)
	if err != nil {
		return uuid.Nil, wrapInternal("save assessment", err)
	}
	return id, nil
}

func (u *Assessment) GetPreferences(ctx context.Context, email string) (user.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return user.Profile{}, ErrInvalidInput
	}

	stored, err := u.users.GetPreferencesByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, user.ErrNotFound
		}
		return user.Profile{}, wrapInternal("load preferences", err)
	}
	return stored.Profile, nil
}

// normalizeEmail returns the bare lower-cased address, or "" when s is not
// a single plain address.
func normalizeEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ""
	}
	return strings.ToLower(addr.Address)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
