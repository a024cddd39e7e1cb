package seeder

import (
	"context"
	"fmt"

	"skill-matrix/internal/database"
)

type RobotsSeeder struct{}

func (RobotsSeeder) Name() string { return "robots" }

func (RobotsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "robots", "id", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"ArmBot",
		"WeldMaster",
		"PalletizerX",
		"VisionPro",
	}

	for _, name := range names {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO robots (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications", "id", "name", "robot_id", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name  string
		Robot string
	}{
		{Name: "Welding", Robot: "WeldMaster"},
		{Name: "Spot Welding", Robot: "WeldMaster"},
		{Name: "Pick and Place", Robot: "ArmBot"},
		{Name: "Assembly", Robot: "ArmBot"},
		{Name: "Palletizing", Robot: "PalletizerX"},
		{Name: "Inspection", Robot: "VisionPro"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO applications (id, name, robot_id)
			 SELECT gen_random_uuid(), $1, r.id FROM robots r WHERE r.name = $2
			 ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Robot,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
