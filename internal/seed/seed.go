package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/project-tktt/hh-loader/internal/domain"
)

// LoadCompanies reads the employer seed list from a JSON file shaped as an
// array of single-entry {"employer_id": "employer_name"} objects, preserving
// file order.
func LoadCompanies(path string) ([]domain.Employer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read companies file: %w", err)
	}

	var entries []map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse companies file: %w", err)
	}

	employers := make([]domain.Employer, 0, len(entries))
	for _, entry := range entries {
		for id, name := range entry {
			employers = append(employers, domain.Employer{ID: id, Name: name})
		}
	}
	return employers, nil
}

// DefaultCompanies is the fallback employer list used when the seed file is
// missing or unreadable.
func DefaultCompanies() []domain.Employer {
	return []domain.Employer{
		{ID: "3740808", Name: "Betting Software"},
		{ID: "10259650", Name: "Softintermob LLC"},
		{ID: "5801953", Name: "ООО Точка Маркетплейсы"},
		{ID: "8997092", Name: "ООО Дивергент"},
		{ID: "2416909", Name: "ООО Смартекс"},
		{ID: "4480129", Name: "V4Scale"},
		{ID: "3202190", Name: "KTS"},
		{ID: "2331500", Name: "ООО Верный Код"},
		{ID: "12504", Name: "Сфера"},
		{ID: "1776381", Name: "CATAPULTO.RU"},
		{ID: "5724503", Name: "Amex Development"},
	}
}
