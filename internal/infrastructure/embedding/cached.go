package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"
)

// Provider is an embedder that can name its model, so cached vectors from
// different models never mix.
type Provider interface {
	Name() string
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CachedEmbedder serves vectors from cache and only sends misses to the
// wrapped provider. Cache errors are treated as misses.
type CachedEmbedder struct {
	inner  Provider
	cache  Cache
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedEmbedder(inner Provider, cache Cache, ttl time.Duration, logger *log.Logger) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (e *CachedEmbedder) Name() string {
	return e.inner.Name()
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	out, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (e *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if e.cache == nil {
		return e.inner.EmbedBatch(ctx, texts)
	}

	out := make([][]float64, len(texts))
	keys := make([]string, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, t := range texts {
		keys[i] = CacheKey(e.inner.Name(), t)
		var v []float64
		hit, err := e.cache.GetJSON(ctx, keys[i], &v)
		if err == nil && hit && len(v) > 0 {
			out[i] = v
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, t)
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	fresh, err := e.inner.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(missTexts) {
		return nil, fmt.Errorf("embedding provider returned %d vectors for %d inputs", len(fresh), len(missTexts))
	}

	for j, i := range missIdx {
		out[i] = fresh[j]
		if err := e.cache.SetJSON(ctx, keys[i], fresh[j], e.ttl); err != nil && e.logger != nil {
			e.logger.Printf("[Embedding] cache SET failed key=%s err=%v", keys[i], err)
		}
	}
	if e.logger != nil {
		e.logger.Printf("[Embedding] batch=%d hits=%d misses=%d", len(texts), len(texts)-len(missTexts), len(missTexts))
	}
	return out, nil
}

func CacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + model + ":" + hex.EncodeToString(sum[:])
}
