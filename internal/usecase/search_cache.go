package usecase

import (
	"context"
	"strings"
	"time"
)

const jobsSearchKeyPrefix = "jobs:search:"

// SearchCache holds live search results as JSON. A miss is (false, nil).
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// JobsSearchCacheKey keys live search results by location code.
func JobsSearchCacheKey(code string) string {
	return jobsSearchKeyPrefix + strings.ToLower(strings.Join(strings.Fields(code), " "))
}
