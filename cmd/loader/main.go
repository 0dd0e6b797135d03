package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/project-tktt/hh-loader/internal/config"
	"github.com/project-tktt/hh-loader/internal/headhunter"
	"github.com/project-tktt/hh-loader/internal/normalizer"
	"github.com/project-tktt/hh-loader/internal/seed"
	"github.com/project-tktt/hh-loader/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting HeadHunter vacancy loader")

	if err := run(); err != nil {
		log.Fatalf("loader: %v", err)
	}
}

// run wraps the whole pipeline so the store is always closed, including on
// early error returns.
func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading settings from the environment")
	}
	cfg := config.Load()

	db, err := store.New(cfg.Postgres.ConnectionString)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close()

	companies, err := seed.LoadCompanies(cfg.CompaniesFile)
	if err != nil {
		log.Printf("Seed file unavailable (%v), using the built-in company list", err)
		companies = seed.DefaultCompanies()
	}

	client := headhunter.NewClient(headhunter.Config{
		BaseURL:   cfg.HeadHunter.BaseURL,
		UserAgent: cfg.HeadHunter.UserAgent,
		Timeout:   cfg.HeadHunter.Timeout,
		MaxPages:  cfg.HeadHunter.MaxPages,
		Currency:  cfg.HeadHunter.Currency,
	})

	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}

	ctx := context.Background()

	log.Printf("Fetching vacancies for %d employers", len(companies))
	postings := client.FetchVacancies(ctx, ids)
	log.Printf("Fetched %d postings", len(postings))

	vacancies, skipped := normalizer.NewNormalizer().NormalizeAll(postings)
	if skipped > 0 {
		log.Printf("Skipped %d malformed postings", skipped)
	}

	log.Printf("Saving %d employers and %d vacancies", len(companies), len(vacancies))
	if err := db.SaveEmployers(ctx, companies); err != nil {
		return fmt.Errorf("save employers: %w", err)
	}
	if err := db.SaveVacancies(ctx, vacancies); err != nil {
		return fmt.Errorf("save vacancies: %w", err)
	}

	return runMenu(ctx, db)
}
