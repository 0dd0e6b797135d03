package normalizer

import (
	"errors"
	"testing"

	"github.com/project-tktt/hh-loader/internal/headhunter"
)

func intPtr(v int) *int { return &v }

func TestNormalize_FullPosting(t *testing.T) {
	n := NewNormalizer()

	v, err := n.Normalize(headhunter.Posting{
		ID:       "97802709",
		Name:     "Frontend developer (React)",
		URL:      "https://api.hh.ru/vacancies/97802709?host=hh.ru",
		Salary:   &headhunter.Salary{From: intPtr(250000), Currency: "RUR"},
		Employer: &headhunter.EmployerRef{ID: "5801953", Name: "ООО Точка Маркетплейсы"},
	})
	if err != nil {
		t.Fatalf("Normalize returned unexpected error: %v", err)
	}

	if v.VacancyID != "97802709" {
		t.Errorf("VacancyID = %q, want 97802709", v.VacancyID)
	}
	if v.Name != "Frontend developer (React)" {
		t.Errorf("Name = %q", v.Name)
	}
	if v.EmployerID != "5801953" || v.EmployerName != "ООО Точка Маркетплейсы" {
		t.Errorf("employer = %q/%q", v.EmployerID, v.EmployerName)
	}
	if v.Salary != 250000 {
		t.Errorf("Salary = %d, want 250000", v.Salary)
	}
}

func TestNormalize_SalaryDefaults(t *testing.T) {
	n := NewNormalizer()
	employer := &headhunter.EmployerRef{ID: "1", Name: "Acme"}

	cases := []struct {
		name   string
		salary *headhunter.Salary
		want   int
	}{
		{"no salary object", nil, 0},
		{"nil lower bound", &headhunter.Salary{To: intPtr(90000), Currency: "RUR"}, 0},
		{"negative lower bound", &headhunter.Salary{From: intPtr(-5), Currency: "RUR"}, 0},
		{"lower bound set", &headhunter.Salary{From: intPtr(70000), Currency: "RUR"}, 70000},
	}
	for _, c := range cases {
		v, err := n.Normalize(headhunter.Posting{ID: "x", Salary: c.salary, Employer: employer})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if v.Salary != c.want {
			t.Errorf("%s: Salary = %d, want %d", c.name, v.Salary, c.want)
		}
	}
}

func TestNormalize_TolerantDefaults(t *testing.T) {
	n := NewNormalizer()

	v, err := n.Normalize(headhunter.Posting{Employer: &headhunter.EmployerRef{ID: "1", Name: "Acme"}})
	if err != nil {
		t.Fatalf("Normalize returned unexpected error: %v", err)
	}
	if v.VacancyID != "" || v.Name != "" || v.URL != "" || v.Salary != 0 {
		t.Errorf("zero posting mapped to %+v, want empty defaults", v)
	}
}

func TestNormalize_MissingEmployer(t *testing.T) {
	n := NewNormalizer()

	_, err := n.Normalize(headhunter.Posting{ID: "97835750", Name: "Тестировщик"})
	if !errors.Is(err, ErrMissingEmployer) {
		t.Fatalf("Normalize error = %v, want ErrMissingEmployer", err)
	}
}

func TestNormalize_StripsMarkupFromTitle(t *testing.T) {
	n := NewNormalizer()

	v, err := n.Normalize(headhunter.Posting{
		Name:     "  Senior <b>Go</b> developer &amp; SRE ",
		Employer: &headhunter.EmployerRef{ID: "1", Name: "Acme"},
	})
	if err != nil {
		t.Fatalf("Normalize returned unexpected error: %v", err)
	}
	if v.Name != "Senior Go developer & SRE" {
		t.Errorf("Name = %q, want markup stripped and entities decoded", v.Name)
	}
}

func TestNormalizeAll_SkipsMalformed(t *testing.T) {
	n := NewNormalizer()
	employer := &headhunter.EmployerRef{ID: "1", Name: "Acme"}

	vacancies, skipped := n.NormalizeAll([]headhunter.Posting{
		{ID: "a", Employer: employer},
		{ID: "broken"},
		{ID: "b", Employer: employer},
	})

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(vacancies) != 2 || vacancies[0].VacancyID != "a" || vacancies[1].VacancyID != "b" {
		t.Errorf("vacancies = %+v, want a and b in order", vacancies)
	}
}
