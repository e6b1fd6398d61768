package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"careerease/internal/domain/catalog"
)

const defaultBaseURL = "https://api.apilayer.com"

var (
	ErrMissingAPIKey = errors.New("apilayer api key not configured")
	ErrInvalidAPIKey = errors.New("apilayer api key rejected")
)

// Queries covers the skill areas the catalog is built from.
var Queries = []string{
	"software", "programming", "web", "data", "cloud",
	"devops", "security", "database", "frontend", "backend",
	"mobile", "ai", "machine learning", "analytics",
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(apiKey, baseURL string, logger *log.Logger) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// FetchAll queries every entry in Queries and returns the de-duplicated
// skills sorted by name. A 401 aborts the whole fetch; other failed
// queries are skipped.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Skill, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	seen := make(map[string]struct{})
	for _, q := range Queries {
		names, err := c.search(ctx, q)
		if err != nil {
			if errors.Is(err, ErrInvalidAPIKey) || ctx.Err() != nil {
				return nil, err
			}
			if c.logger != nil {
				c.logger.Printf("[Skills] query=%q skipped: %v", q, err)
			}
			continue
		}
		for _, n := range names {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			seen[n] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]catalog.Skill, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Skill{Name: n})
	}
	return out, nil
}

func (c *Client) search(ctx context.Context, q string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/skills?q="+url.QueryEscape(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidAPIKey
	case resp.StatusCode != http.StatusOK:
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("status=%d body=%q", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return names, nil
}
