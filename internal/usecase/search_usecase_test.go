package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

func TestSearch_EmptyQuerySkipsStore(t *testing.T) {
	facts := &fakeFactRepo{}
	employees := &fakeEmployeeRepo{}
	uc := NewSearchUsecase(facts, employees)

	for _, q := range []string{"", "   "} {
		res, err := uc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("q=%q: unexpected error: %v", q, err)
		}
		if res.Type != SearchTypeEmpty {
			t.Fatalf("q=%q: expected type %q, got %q", q, SearchTypeEmpty, res.Type)
		}
		if len(res.Facts) != 0 || len(res.Employees) != 0 {
			t.Fatalf("q=%q: expected empty results", q)
		}
	}

	if facts.searchCalls != 0 || employees.searchCalls != 0 {
		t.Fatalf("expected no store access for empty query, got facts=%d employees=%d",
			facts.searchCalls, employees.searchCalls)
	}
}

func TestSearch_ApplicationTierWinsAndEmployeeTierNeverRuns(t *testing.T) {
	aliceID := uuid.New()
	facts := &fakeFactRepo{searchRows: []repository.SearchRow{
		{Robot: "WeldMaster", Application: "Welding", EmployeeID: aliceID, Employee: "Alice", Rating: 3},
	}}
	// Employee tier would also match; it must never be consulted.
	employees := &fakeEmployeeRepo{byName: []repository.EmployeeRef{{ID: uuid.New(), Name: "Weldon"}}}
	uc := NewSearchUsecase(facts, employees)

	res, err := uc.Search(context.Background(), "weld")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != SearchTypeApplication {
		t.Fatalf("expected type %q, got %q", SearchTypeApplication, res.Type)
	}
	if len(res.Facts) != 1 || res.Facts[0].Employee != "Alice" || res.Facts[0].Rating != 3 {
		t.Fatalf("unexpected fact results: %+v", res.Facts)
	}
	if len(res.Employees) != 0 {
		t.Fatalf("tier results must never be merged, got employees: %+v", res.Employees)
	}
	if employees.searchCalls != 0 {
		t.Fatalf("employee tier must not run when application tier matches, ran %d times", employees.searchCalls)
	}
}

func TestSearch_FallsBackToEmployeeTier(t *testing.T) {
	bobID := uuid.New()
	facts := &fakeFactRepo{}
	employees := &fakeEmployeeRepo{byName: []repository.EmployeeRef{{ID: bobID, Name: "Bob"}}}
	uc := NewSearchUsecase(facts, employees)

	res, err := uc.Search(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != SearchTypeEmployee {
		t.Fatalf("expected type %q, got %q", SearchTypeEmployee, res.Type)
	}
	if len(res.Employees) != 1 || res.Employees[0].ID != bobID {
		t.Fatalf("unexpected employee results: %+v", res.Employees)
	}
	if facts.searchCalls != 1 {
		t.Fatalf("expected exactly one fact search, got %d", facts.searchCalls)
	}
}

func TestSearch_NoMatchesAnywhere(t *testing.T) {
	uc := NewSearchUsecase(&fakeFactRepo{}, &fakeEmployeeRepo{})

	res, err := uc.Search(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != SearchTypeNone {
		t.Fatalf("expected type %q, got %q", SearchTypeNone, res.Type)
	}
	if len(res.Facts) != 0 || len(res.Employees) != 0 {
		t.Fatalf("expected empty results, got %+v", res)
	}
}

func TestSearch_StoreFailureIsInternal(t *testing.T) {
	uc := NewSearchUsecase(&fakeFactRepo{err: errors.New("boom")}, &fakeEmployeeRepo{})

	if _, err := uc.Search(context.Background(), "weld"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
