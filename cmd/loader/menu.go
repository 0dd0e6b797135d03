package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/project-tktt/hh-loader/internal/domain"
	"github.com/project-tktt/hh-loader/internal/store"
)

// defaultKeyword is used when the user submits an empty search term
const defaultKeyword = "python"

const menuText = `Enter:
1 - show the average salary
2 - search vacancies by keyword
3 - list companies with vacancy counts
4 - list all vacancies
5 - quit
`

// runMenu drives the interactive reporting loop until the user quits or
// stdin is closed.
func runMenu(ctx context.Context, repo store.Repository) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menuText)
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			avg, err := repo.AverageSalary(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\nAverage salary: %d RUB.\n\n", avg)
		case "2":
			if err := printVacanciesByKeyword(ctx, repo, scanner); err != nil {
				return err
			}
		case "3":
			if err := printCompanies(ctx, repo); err != nil {
				return err
			}
		case "4":
			all, err := repo.AllVacancies(ctx)
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No vacancies in the database.")
				continue
			}
			fmt.Println("All vacancies:")
			printVacancyTable(all)
		case "5":
			return nil
		}
	}
}

func printVacanciesByKeyword(ctx context.Context, repo store.Repository, scanner *bufio.Scanner) error {
	fmt.Print("Enter a keyword to filter vacancies: ")
	keyword := ""
	if scanner.Scan() {
		keyword = strings.TrimSpace(scanner.Text())
	}
	if keyword == "" {
		keyword = defaultKeyword
	}

	vacancies, err := repo.VacanciesByKeyword(ctx, keyword)
	if err != nil {
		return err
	}
	if len(vacancies) == 0 {
		fmt.Printf("No vacancies found for keyword %q.\n", keyword)
		return nil
	}

	fmt.Printf("Vacancies found for keyword %q:\n", keyword)
	printVacancyTable(vacancies)
	return nil
}

func printCompanies(ctx context.Context, repo store.Repository) error {
	counts, err := repo.CompanyVacancyCounts(ctx)
	if err != nil {
		return err
	}

	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"Company", "Vacancies"})
	for _, c := range counts {
		t.Append([]string{c.CompanyName, strconv.Itoa(c.Count)})
	}
	t.Render()
	return nil
}

func printVacancyTable(vacancies []domain.Vacancy) {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"Vacancy", "Salary", "Company", "URL"})
	for _, v := range vacancies {
		salary := "not specified"
		if v.Salary > 0 {
			salary = strconv.Itoa(v.Salary)
		}
		t.Append([]string{v.Name, salary, v.EmployerName, v.URL})
	}
	t.Render()
}
