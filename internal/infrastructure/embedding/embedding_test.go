package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

type countingProvider struct {
	inner  Provider
	inputs [][]string
	err    error
}

func (p *countingProvider) Name() string { return p.inner.Name() }

func (p *countingProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	return p.inner.Embed(ctx, text)
}

func (p *countingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	p.inputs = append(p.inputs, append([]string(nil), texts...))
	if p.err != nil {
		return nil, p.err
	}
	return p.inner.EmbedBatch(ctx, texts)
}

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder(64)
	a, _ := e.Embed(context.Background(), "Python Backend Engineer")
	b, _ := e.Embed(context.Background(), "python   backend, engineer!")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected case and punctuation insensitive vectors")
	}
	if len(a) != 64 {
		t.Fatalf("expected dimension 64, got %d", len(a))
	}
	var sum float64
	for _, v := range a {
		sum += v
	}
	if sum != 3 {
		t.Fatalf("expected 3 token counts, got %v", sum)
	}
}

func TestHashEmbedder_EmptyTextIsZeroVector(t *testing.T) {
	v, err := NewHashEmbedder(0).Embed(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v) != defaultHashDimension {
		t.Fatalf("expected default dimension, got %d", len(v))
	}
	for _, x := range v {
		if x != 0 {
			t.Fatalf("expected zero vector")
		}
	}
}

func TestCachedEmbedder_ServesHitsFromCache(t *testing.T) {
	inner := &countingProvider{inner: NewHashEmbedder(32)}
	cache := newMemoryCache()
	e := NewCachedEmbedder(inner, cache, time.Minute, nil)

	first, err := e.EmbedBatch(context.Background(), []string{"go developer", "rust developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := e.EmbedBatch(context.Background(), []string{"rust developer", "java developer", "go developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(inner.inputs) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(inner.inputs))
	}
	if !reflect.DeepEqual(inner.inputs[1], []string{"java developer"}) {
		t.Fatalf("expected only the miss to reach the provider, got %v", inner.inputs[1])
	}
	if !reflect.DeepEqual(first[0], second[2]) || !reflect.DeepEqual(first[1], second[0]) {
		t.Fatalf("cached vectors out of order")
	}
	if cache.sets != 3 {
		t.Fatalf("expected 3 cache sets, got %d", cache.sets)
	}
}

func TestCachedEmbedder_PropagatesProviderError(t *testing.T) {
	boom := errors.New("down")
	e := NewCachedEmbedder(&countingProvider{inner: NewHashEmbedder(8), err: boom}, newMemoryCache(), time.Minute, nil)
	if _, err := e.Embed(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestCacheKey_SeparatesModels(t *testing.T) {
	if CacheKey("a", "text") == CacheKey("b", "text") {
		t.Fatalf("expected different keys per model")
	}
	if CacheKey("a", "text") != CacheKey("a", "text") {
		t.Fatalf("expected stable key")
	}
}

func TestOllamaEmbedder_EmbedBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req ollamaEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Model != "all-minilm" {
			t.Errorf("expected default model, got %q", req.Model)
		}
		out := ollamaEmbedResponse{}
		for i := range req.Input {
			out.Embeddings = append(out.Embeddings, []float64{float64(i), 1})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: srv.URL + "/"})
	got, err := e.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 || got[2][0] != 2 {
		t.Fatalf("unexpected vectors: %v", got)
	}
}

func TestOllamaEmbedder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: srv.URL})
	if _, err := e.Embed(context.Background(), "a"); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestOllamaEmbedder_ShortResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{Embeddings: [][]float64{{1}}})
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: srv.URL})
	if _, err := e.EmbedBatch(context.Background(), []string{"a", "b"}); err == nil {
		t.Fatalf("expected error on short response")
	}
}

func TestRemoteEmbeddersRequireKey(t *testing.T) {
	if _, err := NewOpenAIEmbedder(OpenAIConfig{}); err == nil {
		t.Fatalf("expected openai error without key")
	}
	if _, err := NewGeminiEmbedder(context.Background(), GeminiConfig{}); err == nil {
		t.Fatalf("expected gemini error without key")
	}
}
