package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/project-tktt/hh-loader/internal/domain"
)

// Store persists employers and vacancies in PostgreSQL and serves the
// reporting queries. One Store owns one connection pool for the whole
// pipeline run; Close releases it.
type Store struct {
	db *sql.DB
}

// New opens a PostgreSQL connection, verifies it and idempotently ensures
// the schema. A connection failure here is not recoverable inline; the
// caller is expected to abort.
func New(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}

	return s, nil
}

// ensureTables creates the employers and vacancies tables if they don't
// exist. Existing data is never dropped on a normal connect path.
func (s *Store) ensureTables() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS employers (
			employer_id VARCHAR(255) PRIMARY KEY,
			employer_name VARCHAR(255) NOT NULL
		)
	`); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS vacancies (
			vacancy_id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			employer_id VARCHAR(255) REFERENCES employers(employer_id),
			url VARCHAR(255) NOT NULL,
			salary INT DEFAULT 0
		)
	`)
	return err
}

// SaveEmployers upserts employers keyed by employer_id; on conflict only the
// name is overwritten. Re-running with the same input is a no-op.
func (s *Store) SaveEmployers(ctx context.Context, employers []domain.Employer) error {
	if len(employers) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employers (employer_id, employer_name)
		VALUES ($1, $2)
		ON CONFLICT (employer_id) DO UPDATE SET
			employer_name = EXCLUDED.employer_name
	`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range employers {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name); err != nil {
			return fmt.Errorf("upsert employer %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// SaveVacancies upserts vacancies keyed by vacancy_id; on conflict name,
// employer_id, url and salary are replaced together. A vacancy whose
// employer_id has no employers row fails the foreign key check.
func (s *Store) SaveVacancies(ctx context.Context, vacancies []domain.Vacancy) error {
	if len(vacancies) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vacancies (vacancy_id, name, employer_id, url, salary)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (vacancy_id) DO UPDATE SET
			(name, employer_id, url, salary) =
			(EXCLUDED.name, EXCLUDED.employer_id, EXCLUDED.url, EXCLUDED.salary)
	`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range vacancies {
		if _, err := stmt.ExecContext(ctx, v.VacancyID, v.Name, v.EmployerID, v.URL, v.Salary); err != nil {
			return fmt.Errorf("upsert vacancy %s: %w", v.VacancyID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// AverageSalary returns the rounded mean salary across all vacancies.
// Zero-salary rows count in the denominator; an empty table yields 0.
func (s *Store) AverageSalary(ctx context.Context) (int, error) {
	var avg int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(ROUND(AVG(salary)), 0) FROM vacancies`,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("query average salary: %w", err)
	}
	return avg, nil
}

// CompanyVacancyCounts returns one row per employer that has at least one
// vacancy, ordered by vacancy count descending.
func (s *Store) CompanyVacancyCounts(ctx context.Context) ([]domain.CompanyVacancyCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT employer_name, COUNT(vacancy_id)
		FROM vacancies
		JOIN employers USING (employer_id)
		GROUP BY employer_name
		ORDER BY COUNT(vacancy_id) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query company counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.CompanyVacancyCount
	for rows.Next() {
		var c domain.CompanyVacancyCount
		if err := rows.Scan(&c.CompanyName, &c.Count); err != nil {
			return nil, fmt.Errorf("scan company count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// AllVacancies returns every vacancy joined with its employer name, ordered
// by salary descending so unspecified salaries sort last.
func (s *Store) AllVacancies(ctx context.Context) ([]domain.Vacancy, error) {
	return s.queryVacancies(ctx, `
		SELECT vacancy_id, name, employer_id, employer_name, url, salary
		FROM vacancies
		JOIN employers USING (employer_id)
		ORDER BY salary DESC
	`)
}

// VacanciesAboveAverage returns vacancies whose salary exceeds the mean
// computed over the full table at query time.
func (s *Store) VacanciesAboveAverage(ctx context.Context) ([]domain.Vacancy, error) {
	return s.queryVacancies(ctx, `
		SELECT vacancy_id, name, employer_id, employer_name, url, salary
		FROM vacancies
		JOIN employers USING (employer_id)
		WHERE salary > (SELECT AVG(salary) FROM vacancies)
		ORDER BY salary DESC
	`)
}

// VacanciesByKeyword returns vacancies whose name contains the keyword,
// case-insensitively. The keyword is bound as a parameter, never spliced
// into the SQL text.
func (s *Store) VacanciesByKeyword(ctx context.Context, keyword string) ([]domain.Vacancy, error) {
	return s.queryVacancies(ctx, `
		SELECT vacancy_id, name, employer_id, employer_name, url, salary
		FROM vacancies
		JOIN employers USING (employer_id)
		WHERE LOWER(name) LIKE '%' || LOWER($1) || '%'
		ORDER BY salary DESC
	`, keyword)
}

func (s *Store) queryVacancies(ctx context.Context, query string, args ...any) ([]domain.Vacancy, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vacancies: %w", err)
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(&v.VacancyID, &v.Name, &v.EmployerID, &v.EmployerName, &v.URL, &v.Salary); err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

// Reset empties both tables. Test support only; the normal pipeline never
// deletes rows.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `TRUNCATE vacancies, employers`)
	return err
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
