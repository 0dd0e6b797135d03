package headhunter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// SearchAPIURL is the public HeadHunter vacancy-search endpoint
	SearchAPIURL = "https://api.hh.ru/vacancies"
	// DefaultPerPage is the provider-imposed per-page cap
	DefaultPerPage = 100
	// DefaultMaxPages is the provider-wide pagination cap, used as the
	// optimistic bound before the first response reports the real count
	DefaultMaxPages = 20

	DefaultUserAgent = "HH-User-Agent"
	DefaultCurrency  = "RUR"
	DefaultTimeout   = 1 * time.Second
)

// Client fetches vacancy postings from the HeadHunter search API
type Client struct {
	client *http.Client
	config Config
}

// NewClient creates a HeadHunter client, filling config defaults
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = SearchAPIURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.PerPage <= 0 || cfg.PerPage > DefaultPerPage {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}

	return &Client{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}

// FetchVacancies retrieves every available posting published by the given
// employers, page by page. A timeout or non-200 response ends pagination and
// whatever was collected so far is returned as a partial result; the caller
// never sees an error. Each call owns a fresh accumulator, so the returned
// slice never aliases client state.
func (c *Client) FetchVacancies(ctx context.Context, employerIDs []string) []Posting {
	var collected []Posting

	pages := c.config.MaxPages
	for page := 0; page < pages; page++ {
		resp, err := c.fetchPage(ctx, employerIDs, page)
		if err != nil {
			log.Printf("[HeadHunter] Page %d failed: %v; keeping %d postings collected so far", page, err, len(collected))
			break
		}

		// Trust the latest reported page count; the provider may revise
		// it between pages.
		pages = resp.Pages
		collected = append(collected, c.keepCurrency(resp.Items)...)
	}

	return collected
}

// fetchPage issues one page request against the search endpoint
func (c *Client) fetchPage(ctx context.Context, employerIDs []string, page int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("text", "")
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.config.PerPage))
	params.Set("currency", c.config.Currency)
	for _, id := range employerIDs {
		params.Add("employer_id", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &searchResp, nil
}

// keepCurrency drops postings priced in a foreign currency. Postings with no
// salary at all survive the filter.
func (c *Client) keepCurrency(items []Posting) []Posting {
	kept := make([]Posting, 0, len(items))
	for _, item := range items {
		if item.Salary != nil && item.Salary.Currency != c.config.Currency {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
