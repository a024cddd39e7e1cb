package usecase

import (
	"context"
	"strings"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

const (
	SearchTypeEmpty       = "empty"
	SearchTypeApplication = "application"
	SearchTypeEmployee    = "employee"
	SearchTypeNone        = "none"
)

type SearchFactItem struct {
	Robot       string
	Application string
	EmployeeID  uuid.UUID
	Employee    string
	Rating      int
}

// SearchResult carries exactly one category of results, selected by Type.
type SearchResult struct {
	Type      string
	Facts     []SearchFactItem
	Employees []EmployeeItem
}

type SearchUsecase interface {
	Search(ctx context.Context, q string) (SearchResult, error)
}

type Search struct {
	facts     repository.SkillFactRepository
	employees repository.EmployeeRepository
}

func NewSearchUsecase(facts repository.SkillFactRepository, employees repository.EmployeeRepository) *Search {
	return &Search{facts: facts, employees: employees}
}

// Search runs the two-tier cascade: application/robot matches first,
// employee-name matches only when tier one is empty. Tiers are never
// merged. An empty query returns immediately without touching the store.
func (u *Search) Search(ctx context.Context, q string) (SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return SearchResult{Type: SearchTypeEmpty, Facts: []SearchFactItem{}}, nil
	}

	factRows, err := u.facts.SearchFacts(ctx, q)
	if err != nil {
		return SearchResult{}, ErrInternal
	}
	if len(factRows) > 0 {
		facts := make([]SearchFactItem, 0, len(factRows))
		for _, row := range factRows {
			facts = append(facts, SearchFactItem{
				Robot:       row.Robot,
				Application: row.Application,
				EmployeeID:  row.EmployeeID,
				Employee:    row.Employee,
				Rating:      row.Rating,
			})
		}
		return SearchResult{Type: SearchTypeApplication, Facts: facts}, nil
	}

	empRows, err := u.employees.SearchByName(ctx, q)
	if err != nil {
		return SearchResult{}, ErrInternal
	}
	if len(empRows) > 0 {
		employees := make([]EmployeeItem, 0, len(empRows))
		for _, row := range empRows {
			employees = append(employees, EmployeeItem{ID: row.ID, Name: row.Name})
		}
		return SearchResult{Type: SearchTypeEmployee, Employees: employees}, nil
	}

	return SearchResult{Type: SearchTypeNone, Facts: []SearchFactItem{}}, nil
}
