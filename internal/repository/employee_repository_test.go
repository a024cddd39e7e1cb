package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestListSummaries_ScansOrderedRows(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	db := &fakeDB{rowsQueue: []*scriptedRows{{data: [][]any{
		{alice, "Alice", 2},
		{bob, "Bob", 0},
	}}}}
	repo := NewPostgresEmployeeRepository(db)

	out, err := repo.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(out))
	}
	if out[0].ID != alice || out[0].RobotCount != 2 {
		t.Fatalf("unexpected first summary: %+v", out[0])
	}
	if out[1].Name != "Bob" || out[1].RobotCount != 0 {
		t.Fatalf("unexpected second summary: %+v", out[1])
	}

	q := db.calls[0].query
	if !strings.Contains(q, "LEFT JOIN employee_skills") {
		t.Fatalf("collapsed summary must outer-join the fact table, got: %s", q)
	}
	if !strings.Contains(q, "COUNT(DISTINCT es.robot_id)") {
		t.Fatalf("robot_count must count distinct robots, got: %s", q)
	}
}

func TestSearchByName_WrapsQueryInWildcards(t *testing.T) {
	db := &fakeDB{rowsQueue: []*scriptedRows{{}}}
	repo := NewPostgresEmployeeRepository(db)

	if _, err := repo.SearchByName(context.Background(), "ali"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := db.calls[0].args[0]; got != "%ali%" {
		t.Fatalf("expected substring pattern %%ali%%, got %v", got)
	}
}

func TestUpdate_ZeroRowsAffectedIsNotFound(t *testing.T) {
	db := &fakeDB{affected: []int64{0}}
	repo := NewPostgresEmployeeRepository(db)

	name := "Alice"
	_, err := repo.Update(context.Background(), uuid.New(), &name, nil)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdate_ReloadsRowAfterWrite(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{
		affected: []int64{1},
		rowQueue: []scriptedRow{{vals: []any{id, "Alice", "E002"}}},
	}
	repo := NewPostgresEmployeeRepository(db)

	code := "E002"
	updated, err := repo.Update(context.Background(), id, nil, &code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != id || updated.EmployeeCode != "E002" {
		t.Fatalf("unexpected updated row: %+v", updated)
	}
	if !strings.Contains(db.calls[0].query, "COALESCE") {
		t.Fatalf("partial update must COALESCE absent fields, got: %s", db.calls[0].query)
	}
}
