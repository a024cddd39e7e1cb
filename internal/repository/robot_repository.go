package repository

import (
	"context"

	"skill-matrix/internal/database"

	"github.com/google/uuid"
)

type Robot struct {
	ID   uuid.UUID
	Name string
}

type RobotRepository interface {
	ListRobots(ctx context.Context) ([]Robot, error)
}

type PostgresRobotRepository struct {
	db database.DB
}

func NewPostgresRobotRepository(db database.DB) *PostgresRobotRepository {
	return &PostgresRobotRepository{db: db}
}

func (r *PostgresRobotRepository) ListRobots(ctx context.Context) ([]Robot, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM robots ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Robot, 0)
	for rows.Next() {
		var rb Robot
		if err := rows.Scan(&rb.ID, &rb.Name); err != nil {
			return nil, err
		}
		out = append(out, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
