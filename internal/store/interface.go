package store

import (
	"context"

	"github.com/project-tktt/hh-loader/internal/domain"
)

// Repository defines the read side consumed by the interactive menu
type Repository interface {
	// AverageSalary returns the rounded mean salary over all vacancies
	AverageSalary(ctx context.Context) (int, error)
	// CompanyVacancyCounts returns per-company vacancy counts
	CompanyVacancyCounts(ctx context.Context) ([]domain.CompanyVacancyCount, error)
	// AllVacancies returns all vacancies with employer names attached
	AllVacancies(ctx context.Context) ([]domain.Vacancy, error)
	// VacanciesAboveAverage returns vacancies paying more than the mean
	VacanciesAboveAverage(ctx context.Context) ([]domain.Vacancy, error)
	// VacanciesByKeyword returns vacancies whose title matches the keyword
	VacanciesByKeyword(ctx context.Context, keyword string) ([]domain.Vacancy, error)
}
