package embedding

import (
	"context"
	"testing"

	"careerease/internal/config"
)

func TestNew_Providers(t *testing.T) {
	ctx := context.Background()

	p, err := New(ctx, config.EmbeddingConfig{Provider: "hash", Dimension: 64}, nil, 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Name() != "hash:64" {
		t.Fatalf("unexpected provider %s", p.Name())
	}

	p, err = New(ctx, config.EmbeddingConfig{Provider: "ollama"}, nil, 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := p.(*OllamaEmbedder); !ok {
		t.Fatalf("expected ollama embedder, got %T", p)
	}

	if _, err := New(ctx, config.EmbeddingConfig{Provider: "openai"}, nil, 0, nil); err == nil {
		t.Fatalf("expected error for openai without key")
	}
	if _, err := New(ctx, config.EmbeddingConfig{Provider: "bert"}, nil, 0, nil); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNew_WrapsWithCache(t *testing.T) {
	p, err := New(context.Background(), config.EmbeddingConfig{Provider: "hash", Cache: true}, newMemoryCache(), 0, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := p.(*CachedEmbedder); !ok {
		t.Fatalf("expected cached embedder, got %T", p)
	}
}
