package embedding

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode"
)

const defaultHashDimension = 512

// HashEmbedder is a deterministic bag-of-words embedder: each lower-cased
// token increments one bucket chosen by FNV-1a. It needs no model and is
// used offline and in tests.
type HashEmbedder struct {
	dimension int
}

func NewHashEmbedder(dimension int) *HashEmbedder {
	if dimension <= 0 {
		dimension = defaultHashDimension
	}
	return &HashEmbedder{dimension: dimension}
}

func (e *HashEmbedder) Name() string {
	return "hash:" + strconv.Itoa(e.dimension)
}

func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	return e.vector(text), nil
}

func (e *HashEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = e.vector(t)
	}
	return out, nil
}

func (e *HashEmbedder) vector(text string) []float64 {
	v := make([]float64, e.dimension)
	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		v[h.Sum32()%uint32(e.dimension)]++
	}
	return v
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
