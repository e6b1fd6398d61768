package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"careerease/internal/domain/catalog"
)

const defaultBaseURL = "https://restcountries.com/v3.1"

// Client lists countries from the restcountries API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
		logger:  logger,
	}
}

type country struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2   string `json:"cca2"`
	Region string `json:"region"`
}

// FetchAll returns every country as a Location with a lowercase two-letter code.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/all?fields=name,cca2,region", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("restcountries failed: status=%d body=%q", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var raw []country
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("restcountries decode: %w", err)
	}

	out := make([]catalog.Location, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name.Common)
		code := strings.ToLower(strings.TrimSpace(r.CCA2))
		if name == "" || code == "" {
			continue
		}
		out = append(out, catalog.Location{Name: name, Code: code, Region: r.Region})
	}
	if c.logger != nil {
		c.logger.Printf("[Countries] fetched %d locations", len(out))
	}
	return out, nil
}
