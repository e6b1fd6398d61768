package dto

import (
	"careerease/internal/domain/catalog"
	"careerease/internal/usecase"
)

type AvailableOptionsResponse struct {
	Skills          []string `json:"skills"`
	Locations       []string `json:"locations"`
	EducationLevels []string `json:"education_levels"`
	CareerGoals     []string `json:"career_goals"`
}

func NewAvailableOptionsResponse(o usecase.AvailableOptions) AvailableOptionsResponse {
	return AvailableOptionsResponse{
		Skills:          nonNil(o.Skills),
		Locations:       nonNil(o.Locations),
		EducationLevels: nonNil(o.EducationLevels),
		CareerGoals:     nonNil(o.CareerGoals),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type SkillResponse struct {
	Name string `json:"name"`
}

type LocationResponse struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Region string `json:"region"`
}

func NewSkillsResponse(items []catalog.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SkillResponse{Name: s.Name})
	}
	return out
}

func NewLocationsResponse(items []catalog.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(items))
	for _, l := range items {
		out = append(out, LocationResponse{Name: l.Name, Code: l.Code, Region: l.Region})
	}
	return out
}
