package embedding

import (
	"context"
	"fmt"
	"log"
	"time"

	"careerease/internal/config"
)

// New builds the provider named by cfg.Provider. When cache is non-nil and
// cfg.Cache is set the provider is wrapped with CachedEmbedder.
func New(ctx context.Context, cfg config.EmbeddingConfig, cache Cache, ttl time.Duration, logger *log.Logger) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "openai":
		p, err = NewOpenAIEmbedder(OpenAIConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL, Dimension: cfg.Dimension})
	case "gemini":
		p, err = NewGeminiEmbedder(ctx, GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model, Dimension: cfg.Dimension})
	case "ollama", "":
		p = NewOllamaEmbedder(OllamaConfig{BaseURL: cfg.BaseURL, Model: cfg.Model, APIKey: cfg.APIKey})
	case "hash":
		p = NewHashEmbedder(cfg.Dimension)
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Printf("[Embedding] provider=%s cache=%t", p.Name(), cfg.Cache && cache != nil)
	}
	if cfg.Cache && cache != nil {
		return NewCachedEmbedder(p, cache, ttl, logger), nil
	}
	return p, nil
}
