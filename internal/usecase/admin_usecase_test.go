package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestCreateEmployeeWithSkill_RatingOutOfRange(t *testing.T) {
	facts := &fakeFactRepo{}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, &fakeEmployeeRepo{}, facts)

	for _, rating := range []int{-1, 5, 100} {
		_, err := uc.CreateEmployeeWithSkill(context.Background(), CreateEmployeeWithSkillInput{
			Name:         "Alice",
			EmployeeCode: "E001",
			Robot:        "ArmBot",
			Application:  "Welding",
			Rating:       rating,
		})
		if !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating=%d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if facts.createCalls != 0 {
		t.Fatalf("invalid rating must be rejected before any store access")
	}
}

func TestCreateEmployeeWithSkill_UnknownRobotLeavesNothingBehind(t *testing.T) {
	facts := &fakeFactRepo{createErr: repository.ErrRobotNotFound}
	employees := &fakeEmployeeRepo{}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, employees, facts)

	_, err := uc.CreateEmployeeWithSkill(context.Background(), CreateEmployeeWithSkillInput{
		Name:         "Alice",
		EmployeeCode: "E001",
		Robot:        "NoSuchBot",
		Application:  "Welding",
		Rating:       3,
	})
	if !errors.Is(err, ErrRobotNotFound) {
		t.Fatalf("expected ErrRobotNotFound, got %v", err)
	}
	if employees.createCalls != 0 {
		t.Fatalf("no standalone employee insert may happen for the combined create")
	}
}

func TestCreateEmployeeWithSkill_UnknownApplication(t *testing.T) {
	facts := &fakeFactRepo{createErr: repository.ErrApplicationNotFound}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, &fakeEmployeeRepo{}, facts)

	_, err := uc.CreateEmployeeWithSkill(context.Background(), CreateEmployeeWithSkillInput{
		Name:         "Alice",
		EmployeeCode: "E001",
		Robot:        "ArmBot",
		Application:  "NoSuchApp",
		Rating:       3,
	})
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestCreateEmployeeWithSkill_Success(t *testing.T) {
	facts := &fakeFactRepo{}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, &fakeEmployeeRepo{}, facts)

	created, err := uc.CreateEmployeeWithSkill(context.Background(), CreateEmployeeWithSkillInput{
		Name:         "Alice",
		EmployeeCode: "E001",
		Robot:        "ArmBot",
		Application:  "Welding",
		Rating:       3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Alice" || created.EmployeeCode != "E001" {
		t.Fatalf("unexpected result: %+v", created)
	}
	if facts.createCalls != 1 {
		t.Fatalf("expected one combined create, got %d", facts.createCalls)
	}
}

func TestCreateApplication_DuplicateNameIsConflict(t *testing.T) {
	apps := &fakeApplicationRepo{err: &pgconn.PgError{Code: "23505"}}
	uc := NewAdminUsecase(apps, &fakeEmployeeRepo{}, &fakeFactRepo{})

	_, err := uc.CreateApplication(context.Background(), CreateApplicationInput{
		Name:    "Welding",
		RobotID: uuid.New(),
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateApplication_UnknownRobotIsNotFound(t *testing.T) {
	apps := &fakeApplicationRepo{err: &pgconn.PgError{Code: "23503"}}
	uc := NewAdminUsecase(apps, &fakeEmployeeRepo{}, &fakeFactRepo{})

	_, err := uc.CreateApplication(context.Background(), CreateApplicationInput{
		Name:    "Welding",
		RobotID: uuid.New(),
	})
	if !errors.Is(err, ErrRobotNotFound) {
		t.Fatalf("expected ErrRobotNotFound, got %v", err)
	}
}

func TestCreateApplication_EmptyNameIsInvalid(t *testing.T) {
	uc := NewAdminUsecase(&fakeApplicationRepo{}, &fakeEmployeeRepo{}, &fakeFactRepo{})

	_, err := uc.CreateApplication(context.Background(), CreateApplicationInput{
		Name:    "   ",
		RobotID: uuid.New(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	employees := &fakeEmployeeRepo{updateErr: repository.ErrEmployeeNotFound}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, employees, &fakeFactRepo{})

	name := "Alice"
	_, err := uc.UpdateEmployee(context.Background(), uuid.New(), UpdateEmployeeInput{Name: &name})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateEmployee_NoFieldsIsInvalid(t *testing.T) {
	uc := NewAdminUsecase(&fakeApplicationRepo{}, &fakeEmployeeRepo{}, &fakeFactRepo{})

	_, err := uc.UpdateEmployee(context.Background(), uuid.New(), UpdateEmployeeInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateEmployee_PartialUpdateKeepsOtherField(t *testing.T) {
	employees := &fakeEmployeeRepo{stored: repository.Employee{Name: "Alice", EmployeeCode: "E001"}}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, employees, &fakeFactRepo{})

	code := "E002"
	updated, err := uc.UpdateEmployee(context.Background(), uuid.New(), UpdateEmployeeInput{EmployeeCode: &code})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Alice" || updated.EmployeeCode != "E002" {
		t.Fatalf("expected partial update to keep name, got %+v", updated)
	}
}

func TestCreateEmployee_DuplicateCodeIsConflict(t *testing.T) {
	employees := &fakeEmployeeRepo{createErr: &pgconn.PgError{Code: "23505"}}
	uc := NewAdminUsecase(&fakeApplicationRepo{}, employees, &fakeFactRepo{})

	_, err := uc.CreateEmployee(context.Background(), CreateEmployeeInput{Name: "Alice", EmployeeCode: "E001"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}
