package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID           uuid.UUID
	Name         string
	EmployeeCode string
}

// EmployeeSummary is the collapsed view row: distinct robots, not fact rows.
type EmployeeSummary struct {
	ID         uuid.UUID
	Name       string
	RobotCount int
}

type EmployeeRef struct {
	ID   uuid.UUID
	Name string
}

type EmployeeRepository interface {
	ListSummaries(ctx context.Context) ([]EmployeeSummary, error)
	SearchByName(ctx context.Context, q string) ([]EmployeeRef, error)
	Create(ctx context.Context, name, employeeCode string) (Employee, error)
	Update(ctx context.Context, id uuid.UUID, name, employeeCode *string) (Employee, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

// ListSummaries left-joins the fact table so employees without any skill
// rows still appear, with a robot count of zero.
func (r *PostgresEmployeeRepository) ListSummaries(ctx context.Context) ([]EmployeeSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.name, COUNT(DISTINCT es.robot_id)
		 FROM employees e
		 LEFT JOIN employee_skills es ON es.employee_id = e.id
		 GROUP BY e.id, e.name
		 ORDER BY e.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeSummary, 0)
	for rows.Next() {
		var s EmployeeSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.RobotCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) SearchByName(ctx context.Context, q string) ([]EmployeeRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM employees WHERE name ILIKE $1 ORDER BY name ASC`,
		"%"+q+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeRef, 0)
	for rows.Next() {
		var e EmployeeRef
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, name, employeeCode string) (Employee, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (id, name, employee_code) VALUES ($1, $2, $3)`,
		id, name, employeeCode,
	)
	if err != nil {
		return Employee{}, err
	}
	return Employee{ID: id, Name: name, EmployeeCode: employeeCode}, nil
}

// Update is partial: nil fields keep their stored value.
func (r *PostgresEmployeeRepository) Update(ctx context.Context, id uuid.UUID, name, employeeCode *string) (Employee, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE employees
		 SET name = COALESCE($1, name), employee_code = COALESCE($2, employee_code)
		 WHERE id = $3`,
		name, employeeCode, id,
	)
	if err != nil {
		return Employee{}, err
	}
	if affected == 0 {
		return Employee{}, ErrEmployeeNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, name, employee_code FROM employees WHERE id = $1`,
		id,
	)

	var e Employee
	if err := row.Scan(&e.ID, &e.Name, &e.EmployeeCode); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrEmployeeNotFound
		}
		return Employee{}, err
	}
	return e, nil
}
