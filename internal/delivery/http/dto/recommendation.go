package dto

import (
	"strconv"

	"careerease/internal/domain/user"
	"careerease/internal/usecase"
)

type RecommendJobsRequest struct {
	Skills             []string `json:"skills"`
	YearsOfExperience  *int     `json:"years_of_experience"`
	CareerGoals        string   `json:"career_goals"`
	EducationLevel     string   `json:"education_level"`
	LocationPreference string   `json:"location_preference"`
}

func (r RecommendJobsRequest) Profile() user.Profile {
	years := 0
	if r.YearsOfExperience != nil {
		years = *r.YearsOfExperience
	}
	return user.Profile{
		Skills:             r.Skills,
		YearsOfExperience:  years,
		CareerGoal:         r.CareerGoals,
		EducationLevel:     r.EducationLevel,
		LocationPreference: r.LocationPreference,
	}
}

// OptionalAmount encodes a missing salary as "" and a present one as a number.
type OptionalAmount struct {
	Value *float64
}

func (a OptionalAmount) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte(`""`), nil
	}
	return strconv.AppendFloat(nil, *a.Value, 'f', -1, 64), nil
}

type RecommendedJobResponse struct {
	Title                         string         `json:"title"`
	Company                       string         `json:"company"`
	Location                      string         `json:"location"`
	SalaryMin                     OptionalAmount `json:"salary_min"`
	SalaryMax                     OptionalAmount `json:"salary_max"`
	SalaryCurrency                string         `json:"salary_currency"`
	ContractTime                  string         `json:"contract_time"`
	RequiredSkills                string         `json:"required_skills"`
	Description                   string         `json:"description"`
	ApplicationURL                string         `json:"application_url"`
	PostedDate                    string         `json:"posted_date"`
	ExpiryDate                    string         `json:"expiry_date"`
	RecommendedForExperienceLevel string         `json:"recommended_for_experience_level"`
	SimilarityScore               float64        `json:"similarity_score"`
}

type RecommendJobsResponse struct {
	RecommendedJobs []RecommendedJobResponse `json:"recommended_jobs"`
}

func NewRecommendJobsResponse(jobs []usecase.RecommendedJob) RecommendJobsResponse {
	out := make([]RecommendedJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, RecommendedJobResponse{
			Title:                         j.Title,
			Company:                       j.Company,
			Location:                      j.Location,
			SalaryMin:                     OptionalAmount{Value: j.SalaryMin},
			SalaryMax:                     OptionalAmount{Value: j.SalaryMax},
			SalaryCurrency:                j.SalaryCurrency,
			ContractTime:                  j.ContractTime,
			RequiredSkills:                j.RequiredSkills,
			Description:                   j.Description,
			ApplicationURL:                j.ApplicationURL,
			PostedDate:                    j.PostedDate,
			ExpiryDate:                    j.ExpiryDate,
			RecommendedForExperienceLevel: j.RecommendedForExperienceLevel,
			SimilarityScore:               j.Score,
		})
	}
	return RecommendJobsResponse{RecommendedJobs: out}
}
