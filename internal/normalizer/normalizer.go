package normalizer

import (
	"errors"
	"fmt"
	"log"

	"github.com/project-tktt/hh-loader/internal/cleaner"
	"github.com/project-tktt/hh-loader/internal/domain"
	"github.com/project-tktt/hh-loader/internal/headhunter"
)

// ErrMissingEmployer marks a raw posting that carries no employer object.
// Such a posting cannot satisfy the store's referential integrity, so the
// caller must decide whether to skip it or abort.
var ErrMissingEmployer = errors.New("posting has no employer")

// Normalizer converts raw HeadHunter postings to canonical Vacancy records
type Normalizer struct {
	cleaner *cleaner.Cleaner
}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{cleaner: cleaner.NewCleaner()}
}

// Normalize maps one raw posting to a Vacancy. Missing id, name, url or
// salary fall back to zero values; a missing employer object is the one
// malformation that is rejected, with ErrMissingEmployer.
func (n *Normalizer) Normalize(p headhunter.Posting) (domain.Vacancy, error) {
	if p.Employer == nil {
		return domain.Vacancy{}, fmt.Errorf("posting %q: %w", p.ID, ErrMissingEmployer)
	}

	salary := 0
	if p.Salary != nil && p.Salary.From != nil {
		salary = *p.Salary.From
	}
	if salary < 0 {
		salary = 0
	}

	return domain.Vacancy{
		VacancyID:    p.ID,
		Name:         n.cleaner.CleanText(p.Name),
		EmployerID:   p.Employer.ID,
		EmployerName: p.Employer.Name,
		URL:          p.URL,
		Salary:       salary,
	}, nil
}

// NormalizeAll maps a batch of postings, preserving order. Malformed
// postings are skipped with a log line; the skipped count is returned so the
// caller can surface it.
func (n *Normalizer) NormalizeAll(postings []headhunter.Posting) ([]domain.Vacancy, int) {
	vacancies := make([]domain.Vacancy, 0, len(postings))
	skipped := 0

	for _, p := range postings {
		v, err := n.Normalize(p)
		if err != nil {
			log.Printf("[Normalizer] Skipping posting: %v", err)
			skipped++
			continue
		}
		vacancies = append(vacancies, v)
	}

	return vacancies, skipped
}
