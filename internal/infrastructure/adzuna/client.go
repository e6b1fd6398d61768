package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"careerease/internal/config"
	"careerease/internal/domain/job"
)

const (
	defaultBaseURL        = "https://api.adzuna.com/v1/api/jobs"
	defaultResultsPerPage = 20
	httpTimeout           = 15 * time.Second
)

var ErrNotConfigured = errors.New("adzuna credentials not configured")

// Client searches the Adzuna job API, one page per call.
type Client struct {
	appID   string
	appKey  string
	query   string
	perPage int
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(cfg config.AdzunaConfig, logger *log.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	perPage := cfg.ResultsPerPage
	if perPage <= 0 {
		perPage = defaultResultsPerPage
	}
	return &Client{
		appID:   cfg.AppID,
		appKey:  cfg.AppKey,
		query:   cfg.Query,
		perPage: perPage,
		baseURL: baseURL,
		client:  &http.Client{Timeout: httpTimeout},
		logger:  logger,
	}
}

type searchResponse struct {
	Results []result `json:"results"`
	Count   int      `json:"count"`
}

type result struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Company      named    `json:"company"`
	Location     named    `json:"location"`
	Category     category `json:"category"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	Currency     string   `json:"salary_currency"`
	ContractTime string   `json:"contract_time"`
	RedirectURL  string   `json:"redirect_url"`
	Created      string   `json:"created"`
	Expires      string   `json:"expires"`
}

type named struct {
	DisplayName string `json:"display_name"`
}

type category struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// Search returns the newest postings for a two-letter country code.
func (c *Client) Search(ctx context.Context, countryCode string) ([]job.Posting, error) {
	if c == nil {
		return nil, errors.New("nil adzuna client")
	}
	if c.appID == "" || c.appKey == "" {
		return nil, ErrNotConfigured
	}
	countryCode = strings.ToLower(strings.TrimSpace(countryCode))
	if countryCode == "" {
		return nil, errors.New("empty country code")
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(c.perPage))
	params.Set("content-type", "application/json")
	params.Set("sort_by", "date")
	if c.query != "" {
		params.Set("what", c.query)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, url.PathEscape(countryCode), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Adzuna] search error country=%s status=%d body=%q", countryCode, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("adzuna search failed: status=%d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("adzuna decode: %w", err)
	}

	postings := make([]job.Posting, 0, len(out.Results))
	for _, r := range out.Results {
		postings = append(postings, r.toPosting())
	}
	if c.logger != nil {
		c.logger.Printf("[Adzuna] country=%s returned %d jobs", countryCode, len(postings))
	}
	return postings, nil
}

func (r result) toPosting() job.Posting {
	return job.Posting{
		ExternalID:   r.ID,
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		Company:      strings.TrimSpace(r.Company.DisplayName),
		Location:     strings.TrimSpace(r.Location.DisplayName),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		Currency:     r.Currency,
		ContractTime: r.ContractTime,
		Tags:         r.Category.Tag,
		Created:      parseTime(r.Created),
		Expires:      parseTime(r.Expires),
		ApplyURL:     r.RedirectURL,
	}
}

func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
