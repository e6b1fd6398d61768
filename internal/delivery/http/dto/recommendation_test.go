package dto

import (
	"encoding/json"
	"testing"
)

func TestOptionalAmount_MarshalJSON(t *testing.T) {
	v := 80000.5
	b, err := json.Marshal(struct {
		Min OptionalAmount `json:"min"`
		Max OptionalAmount `json:"max"`
	}{Min: OptionalAmount{Value: &v}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := string(b); got != `{"min":80000.5,"max":""}` {
		t.Fatalf("unexpected json %s", got)
	}
}

func TestRecommendJobsRequest_Profile(t *testing.T) {
	var req RecommendJobsRequest
	body := `{"skills":["python"],"years_of_experience":3,"career_goals":"Software Engineer","education_level":"PhD","location_preference":"Germany"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p := req.Profile()
	if p.CareerGoal != "Software Engineer" || p.YearsOfExperience != 3 || p.LocationPreference != "Germany" {
		t.Fatalf("unexpected profile %+v", p)
	}
}
