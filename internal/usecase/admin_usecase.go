package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type CreateApplicationInput struct {
	Name    string
	RobotID uuid.UUID
}

type CreateEmployeeInput struct {
	Name         string
	EmployeeCode string
}

type UpdateEmployeeInput struct {
	Name         *string
	EmployeeCode *string
}

type CreateEmployeeWithSkillInput struct {
	Name         string
	EmployeeCode string
	Robot        string
	Application  string
	Rating       int
}

type ApplicationResult struct {
	ID      uuid.UUID
	Name    string
	RobotID uuid.UUID
}

type EmployeeResult struct {
	ID           uuid.UUID
	Name         string
	EmployeeCode string
}

// AdminUsecase is the mutation gateway. Callers are already known to be
// admins; this layer only validates inputs and referential existence.
type AdminUsecase interface {
	CreateApplication(ctx context.Context, in CreateApplicationInput) (ApplicationResult, error)
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (EmployeeResult, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, in UpdateEmployeeInput) (EmployeeResult, error)
	CreateEmployeeWithSkill(ctx context.Context, in CreateEmployeeWithSkillInput) (EmployeeResult, error)
}

type Admin struct {
	applications repository.ApplicationRepository
	employees    repository.EmployeeRepository
	facts        repository.SkillFactRepository
}

func NewAdminUsecase(applications repository.ApplicationRepository, employees repository.EmployeeRepository, facts repository.SkillFactRepository) *Admin {
	return &Admin{applications: applications, employees: employees, facts: facts}
}

func (u *Admin) CreateApplication(ctx context.Context, in CreateApplicationInput) (ApplicationResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.RobotID == uuid.Nil {
		return ApplicationResult{}, ErrInvalidInput
	}

	created, err := u.applications.CreateApplication(ctx, name, in.RobotID)
	if err != nil {
		if isUniqueViolation(err) {
			return ApplicationResult{}, ErrDuplicateName
		}
		if isForeignKeyViolation(err) {
			return ApplicationResult{}, ErrRobotNotFound
		}
		return ApplicationResult{}, ErrInternal
	}
	return ApplicationResult{ID: created.ID, Name: created.Name, RobotID: created.RobotID}, nil
}

func (u *Admin) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (EmployeeResult, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.EmployeeCode)
	if name == "" || code == "" {
		return EmployeeResult{}, ErrInvalidInput
	}

	created, err := u.employees.Create(ctx, name, code)
	if err != nil {
		if isUniqueViolation(err) {
			return EmployeeResult{}, ErrDuplicateName
		}
		return EmployeeResult{}, ErrInternal
	}
	return EmployeeResult{ID: created.ID, Name: created.Name, EmployeeCode: created.EmployeeCode}, nil
}

func (u *Admin) UpdateEmployee(ctx context.Context, id uuid.UUID, in UpdateEmployeeInput) (EmployeeResult, error) {
	if id == uuid.Nil {
		return EmployeeResult{}, ErrInvalidInput
	}
	if in.Name == nil && in.EmployeeCode == nil {
		return EmployeeResult{}, ErrInvalidInput
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return EmployeeResult{}, ErrInvalidInput
	}
	if in.EmployeeCode != nil && strings.TrimSpace(*in.EmployeeCode) == "" {
		return EmployeeResult{}, ErrInvalidInput
	}

	updated, err := u.employees.Update(ctx, id, in.Name, in.EmployeeCode)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return EmployeeResult{}, ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return EmployeeResult{}, ErrDuplicateName
		}
		return EmployeeResult{}, ErrInternal
	}
	return EmployeeResult{ID: updated.ID, Name: updated.Name, EmployeeCode: updated.EmployeeCode}, nil
}

// CreateEmployeeWithSkill validates before any I/O; the repository runs
// the multi-step insert in one transaction so an unknown robot or
// application name leaves no employee row behind.
func (u *Admin) CreateEmployeeWithSkill(ctx context.Context, in CreateEmployeeWithSkillInput) (EmployeeResult, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.EmployeeCode)
	robot := strings.TrimSpace(in.Robot)
	application := strings.TrimSpace(in.Application)
	if name == "" || code == "" || robot == "" || application == "" {
		return EmployeeResult{}, ErrInvalidInput
	}
	if !isValidRating(in.Rating) {
		return EmployeeResult{}, ErrInvalidRating
	}

	created, err := u.facts.CreateEmployeeWithFact(ctx, name, code, robot, application, in.Rating)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRobotNotFound):
			return EmployeeResult{}, ErrRobotNotFound
		case errors.Is(err, repository.ErrApplicationNotFound):
			return EmployeeResult{}, ErrApplicationNotFound
		case isUniqueViolation(err):
			return EmployeeResult{}, ErrDuplicateName
		default:
			return EmployeeResult{}, ErrInternal
		}
	}
	return EmployeeResult{ID: created.ID, Name: created.Name, EmployeeCode: created.EmployeeCode}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
