package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the preference subset used as a recommendation query.
type Profile struct {
	Skills             []string
	YearsOfExperience  int
	CareerGoal         string
	EducationLevel     string
	LocationPreference string
}

type Assessment struct {
	Name               string
	Email              string
	Phone              string
	CurrentSkills      []string
	TargetSkills       []string
	YearsOfExperience  int
	CareerGoal         string
	EducationLevel     string
	LocationPreference string
	CreatedAt          time.Time
}

// Preferences derives the stored preference row from an assessment.
func (a Assessment) Preferences() Profile {
	skills := make([]string, len(a.CurrentSkills))
	copy(skills, a.CurrentSkills)
	return Profile{
		Skills:             skills,
		YearsOfExperience:  a.YearsOfExperience,
		CareerGoal:         a.CareerGoal,
		EducationLevel:     a.EducationLevel,
		LocationPreference: a.LocationPreference,
	}
}

type StoredPreferences struct {
	UserID  uuid.UUID
	Email   string
	Profile Profile
}
