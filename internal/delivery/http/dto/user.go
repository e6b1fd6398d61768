package dto

import (
	"careerease/internal/domain/user"
	"careerease/internal/usecase"

	"github.com/google/uuid"
)

type AssessmentRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CurrentSkills      []string `json:"current_skills"`
	TargetSkills       []string `json:"target_skills"`
	YearsOfExperience  *int     `json:"years_of_experience"`
	CareerGoals        string   `json:"career_goals"`
	EducationLevel     string   `json:"education_level"`
	LocationPreference string   `json:"location_preference"`
}

func (r AssessmentRequest) Input() usecase.AssessmentInput {
	years := 0
	if r.YearsOfExperience != nil {
		years = *r.YearsOfExperience
	}
	return usecase.AssessmentInput{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		CurrentSkills:      r.CurrentSkills,
		TargetSkills:       r.TargetSkills,
		YearsOfExperience:  years,
		CareerGoal:         r.CareerGoals,
		EducationLevel:     r.EducationLevel,
		LocationPreference: r.LocationPreference,
	}
}

type AssessmentResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type PreferencesResponse struct {
	Skills             []string `json:"skills"`
	YearsOfExperience  int      `json:"years_of_experience"`
	CareerGoals        string   `json:"career_goals"`
	EducationLevel     string   `json:"education_level"`
	LocationPreference string   `json:"location_preference"`
}

func NewPreferencesResponse(p user.Profile) PreferencesResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return PreferencesResponse{
		Skills:             skills,
		YearsOfExperience:  p.YearsOfExperience,
		CareerGoals:        p.CareerGoal,
		EducationLevel:     p.EducationLevel,
		LocationPreference: p.LocationPreference,
	}
}
