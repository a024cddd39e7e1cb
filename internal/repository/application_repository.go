package repository

import (
	"context"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

type Application struct {
	ID      uuid.UUID
	Name    string
	RobotID uuid.UUID
}

// ApplicationOption carries the parent robot's name for filter dropdowns.
type ApplicationOption struct {
	ID    uuid.UUID
	Name  string
	Robot string
}

type ApplicationRepository interface {
	ListApplications(ctx context.Context) ([]ApplicationOption, error)
	CreateApplication(ctx context.Context, name string, robotID uuid.UUID) (Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListApplications(ctx context.Context) ([]ApplicationOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.name, r.name
		 FROM applications a
		 JOIN robots r ON r.id = a.robot_id
		 ORDER BY r.name ASC, a.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationOption, 0)
	for rows.Next() {
		var a ApplicationOption
		if err := rows.Scan(&a.ID, &a.Name, &a.Robot); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) CreateApplication(ctx context.Context, name string, robotID uuid.UUID) (Application, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, name, robot_id) VALUES ($1, $2, $3)`,
		id, name, robotID,
	)
	if err != nil {
		return Application{}, err
	}
	return Application{ID: id, Name: name, RobotID: robotID}, nil
}
