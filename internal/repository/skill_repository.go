package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRobotNotFound       = errors.New("robot not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// SkillRow is one fact row joined to its robot and application names,
// as consumed by the expanded per-employee view.
type SkillRow struct {
	Robot       string
	Application string
	Rating      int
}

// SearchRow is one fact row as returned by the free-text search tier.
type SearchRow struct {
	Robot       string
	Application string
	EmployeeID  uuid.UUID
	Employee    string
	Rating      int
}

type SkillFactRepository interface {
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]SkillRow, error)
	FilterEmployees(ctx context.Context, robot, application *string, rating *int) ([]EmployeeRef, error)
	SearchFacts(ctx context.Context, q string) ([]SearchRow, error)
	CreateEmployeeWithFact(ctx context.Context, name, employeeCode, robot, application string, rating int) (Employee, error)
}

type PostgresSkillFactRepository struct {
	db database.DB
}

func NewPostgresSkillFactRepository(db database.DB) *PostgresSkillFactRepository {
	return &PostgresSkillFactRepository{db: db}
}

// ListByEmployee returns fact rows in (robot name, application name) order
// so callers can fold them into robot groups in a single pass. An unknown
// employee id simply yields no rows.
func (r *PostgresSkillFactRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]SkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.name, a.name, es.rating
		 FROM employee_skills es
		 JOIN robots r ON r.id = es.robot_id
		 JOIN applications a ON a.id = es.application_id
		 WHERE es.employee_id = $1
		 ORDER BY r.name ASC, a.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillRow, 0)
	for rows.Next() {
		var s SkillRow
		if err := rows.Scan(&s.Robot, &s.Application, &s.Rating); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterEmployees matches fact rows against exact criteria; a nil
// criterion is a wildcard. The employee universe is everyone with at
// least one fact row.
func (r *PostgresSkillFactRepository) FilterEmployees(ctx context.Context, robot, application *string, rating *int) ([]EmployeeRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT e.id, e.name
		 FROM employee_skills es
		 JOIN employees e ON e.id = es.employee_id
		 JOIN robots r ON r.id = es.robot_id
		 JOIN applications a ON a.id = es.application_id
		 WHERE ($1::text IS NULL OR r.name = $1)
		   AND ($2::text IS NULL OR a.name = $2)
		   AND ($3::int IS NULL OR es.rating = $3)
		 ORDER BY e.name ASC`,
		robot, application, rating,
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

func (r *PostgresSkillFactRepository) SearchFacts(ctx context.Context, q string) ([]SearchRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.name, a.name, e.id, e.name, es.rating
		 FROM employee_skills es
		 JOIN employees e ON e.id = es.employee_id
		 JOIN robots r ON r.id = es.robot_id
		 JOIN applications a ON a.id = es.application_id
		 WHERE a.name ILIKE $1 OR r.name ILIKE $1
		 ORDER BY r.name ASC, a.name ASC, e.name ASC`,
		"%"+q+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SearchRow, 0)
	for rows.Next() {
		var s SearchRow
		if err := rows.Scan(&s.Robot, &s.Application, &s.EmployeeID, &s.Employee, &s.Rating); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployeeWithFact runs the combined create in one transaction.
// Robot and application are resolved by name before the employee row is
// inserted, so an unknown name aborts with nothing committed. The fact
// insert is an upsert on (employee_id, robot_id, application_id).
func (r *PostgresSkillFactRepository) CreateEmployeeWithFact(ctx context.Context, name, employeeCode, robot, application string, rating int) (Employee, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var robotID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT id FROM robots WHERE name = $1`, robot).Scan(&robotID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrRobotNotFound
		}
		return Employee{}, err
	}

	var applicationID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT id FROM applications WHERE name = $1`, application).Scan(&applicationID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrApplicationNotFound
		}
		return Employee{}, err
	}

	employeeID := uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO employees (id, name, employee_code) VALUES ($1, $2, $3)`,
		employeeID, name, employeeCode,
	); err != nil {
		return Employee{}, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO employee_skills (id, employee_id, robot_id, application_id, rating)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (employee_id, robot_id, application_id) DO UPDATE SET rating = EXCLUDED.rating`,
		uuid.New(), employeeID, robotID, applicationID, rating,
	); err != nil {
		return Employee{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}

	return Employee{ID: employeeID, Name: name, EmployeeCode: employeeCode}, nil
}
