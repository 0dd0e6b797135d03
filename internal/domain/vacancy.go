package domain

// Vacancy is the canonical record for a single job posting, independent of
// the provider's JSON shape. Salary 0 means "not specified"; a real salary
// is always positive.
type Vacancy struct {
	VacancyID    string `json:"vacancy_id"`
	Name         string `json:"name"`
	EmployerID   string `json:"employer_id"`
	EmployerName string `json:"employer_name"` // filled from the employers table on reads
	URL          string `json:"url"`
	Salary       int    `json:"salary"`
}

// Employer is one company whose vacancies the pipeline ingests.
type Employer struct {
	ID   string `json:"employer_id"`
	Name string `json:"employer_name"`
}

// CompanyVacancyCount is one row of the per-company vacancy report.
type CompanyVacancyCount struct {
	CompanyName string `json:"company_name"`
	Count       int    `json:"count"`
}
