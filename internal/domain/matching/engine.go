package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"careerease/internal/domain/job"
	"careerease/internal/domain/user"
)

const DefaultTopK = 5

var (
	ErrInvalidProfile       = errors.New("invalid profile")
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
)

// Embedder maps text to fixed-length vectors. EmbedBatch returns one vector
// per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

type ScoredCandidate struct {
	Job   job.Posting
	Score float64
}

type Ranker struct {
	embedder Embedder
	topK     int
}

func NewRanker(embedder Embedder, topK int) *Ranker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Ranker{embedder: embedder, topK: topK}
}

func (r *Ranker) TopK() int {
	if r == nil || r.topK <= 0 {
		return DefaultTopK
	}
	return r.topK
}

// Rank scores candidates against the profile and returns at most TopK of
// them ordered by descending similarity. Equal scores keep input order.
func (r *Ranker) Rank(ctx context.Context, profile user.Profile, candidates []job.Posting) ([]ScoredCandidate, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []ScoredCandidate{}, nil
	}
	if r == nil || r.embedder == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrEmbeddingUnavailable)
	}

	query, err := r.embedder.Embed(ctx, ProfileText(profile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	texts := make([]string, len(candidates))
	for i := range candidates {
		texts[i] = candidates[i].Text()
	}
	vectors, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}
	if len(vectors) != len(candidates) {
		return nil, fmt.Errorf("%w: got %d vectors for %d candidates", ErrEmbeddingUnavailable, len(vectors), len(candidates))
	}

	scored := make([]ScoredCandidate, len(candidates))
	for i := range candidates {
		if len(vectors[i]) != len(query) {
			return nil, fmt.Errorf("%w: dimension mismatch at candidate %d: %d != %d", ErrEmbeddingUnavailable, i, len(vectors[i]), len(query))
		}
		scored[i] = ScoredCandidate{Job: candidates[i], Score: CosineSimilarity(query, vectors[i])}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	k := r.TopK()
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

func ValidateProfile(p user.Profile) error {
	hasSkill := false
	for _, s := range p.Skills {
		if strings.TrimSpace(s) != "" {
			hasSkill = true
			break
		}
	}
	if !hasSkill {
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.CareerGoal) == "" {
		return fmt.Errorf("%w: career goal is required", ErrInvalidProfile)
	}
	if p.YearsOfExperience < 0 {
		return fmt.Errorf("%w: years of experience must not be negative", ErrInvalidProfile)
	}
	return nil
}

// ProfileText renders the profile in the fixed form that gets embedded.
// Changing it changes every score.
func ProfileText(p user.Profile) string {
	var b strings.Builder
	b.WriteString("Skills: ")
	b.WriteString(strings.Join(p.Skills, ", "))
	b.WriteString(". Years of Experience: ")
	b.WriteString(strconv.Itoa(p.YearsOfExperience))
	b.WriteString(". Goals: ")
	b.WriteString(p.CareerGoal)
	b.WriteString(". Education: ")
	b.WriteString(p.EducationLevel)
	b.WriteString(". Location: ")
	b.WriteString(p.LocationPreference)
	b.WriteString(".")
	return b.String()
}
