package usecase

import (
	"context"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type EmployeeSummaryItem struct {
	ID         uuid.UUID
	Name       string
	RobotCount int
}

type SkillEntry struct {
	Application string
	Rating      int
}

// MatrixUsecase is the aggregation engine: the collapsed employee summary
// and the expanded per-employee breakdown grouped by robot.
type MatrixUsecase interface {
	ListEmployees(ctx context.Context) ([]EmployeeSummaryItem, error)
	GetEmployeeMatrix(ctx context.Context, employeeID uuid.UUID) (map[string][]SkillEntry, error)
}

type Matrix struct {
	employees repository.EmployeeRepository
	facts     repository.SkillFactRepository
}

func NewMatrixUsecase(employees repository.EmployeeRepository, facts repository.SkillFactRepository) *Matrix {
	return &Matrix{employees: employees, facts: facts}
}

func (u *Matrix) ListEmployees(ctx context.Context) ([]EmployeeSummaryItem, error) {
	items, err := u.employees.ListSummaries(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]EmployeeSummaryItem, 0, len(items))
	for _, it := range items {
		out = append(out, EmployeeSummaryItem{
			ID:         it.ID,
			Name:       it.Name,
			RobotCount: it.RobotCount,
		})
	}
	return out, nil
}

// GetEmployeeMatrix folds fact rows, already ordered by (robot name,
// application name), into robot groups created on first sight. An
// unknown employee id yields an empty grouping, not an error.
func (u *Matrix) GetEmployeeMatrix(ctx context.Context, employeeID uuid.UUID) (map[string][]SkillEntry, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	rows, err := u.facts.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}

	grouped := make(map[string][]SkillEntry)
	for _, row := range rows {
		grouped[row.Robot] = append(grouped[row.Robot], SkillEntry{
			Application: row.Application,
			Rating:      row.Rating,
		})
	}
	return grouped, nil
}
