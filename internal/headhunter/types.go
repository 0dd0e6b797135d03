package headhunter

import "time"

// Config holds HeadHunter client configuration
type Config struct {
	BaseURL   string
	UserAgent string
	// PerPage is capped at 100 by the provider
	PerPage int
	// MaxPages is the optimistic upper bound on pagination; the first
	// successful response corrects it from the reported page count.
	MaxPages int
	// Timeout bounds every single page request. Deliberately short so a
	// slow provider degrades to a partial result instead of hanging.
	Timeout time.Duration
	// Currency keeps only postings priced in this currency (or with no
	// salary at all). Postings in any other currency are dropped.
	Currency string
}

// SearchResponse is the HeadHunter vacancy-search API response
type SearchResponse struct {
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
	Found int       `json:"found"`
	Items []Posting `json:"items"`
}

// Posting is a single raw vacancy as returned by the API, pre-normalization.
// Salary and Employer are pointers because the provider omits them entirely
// for some postings.
type Posting struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Salary   *Salary      `json:"salary"`
	Employer *EmployerRef `json:"employer"`
}

// Salary is the provider's salary range; From and To are null when only one
// bound is published.
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    bool   `json:"gross"`
}

// EmployerRef identifies the company behind a posting
type EmployerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
