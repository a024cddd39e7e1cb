package usecase

import (
	"context"

	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type RobotItem struct {
	ID   uuid.UUID
	Name string
}

type ApplicationItem struct {
	ID    uuid.UUID
	Name  string
	Robot string
}

type EmployeeItem struct {
	ID   uuid.UUID
	Name string
}

type FilterOptions struct {
	Robots       []RobotItem
	Applications []ApplicationItem
	Ratings      []int
}

// FilterCriteria are exact-match criteria; a nil field is a wildcard.
type FilterCriteria struct {
	Robot       *string
	Application *string
	Rating      *int
}

type FilterUsecase interface {
	ListOptions(ctx context.Context) (FilterOptions, error)
	FilterEmployees(ctx context.Context, criteria FilterCriteria) ([]EmployeeItem, error)
}

type Filter struct {
	robots       repository.RobotRepository
	applications repository.ApplicationRepository
	facts        repository.SkillFactRepository
}

func NewFilterUsecase(robots repository.RobotRepository, applications repository.ApplicationRepository, facts repository.SkillFactRepository) *Filter {
	return &Filter{robots: robots, applications: applications, facts: facts}
}

func (u *Filter) ListOptions(ctx context.Context) (FilterOptions, error) {
	robots, err := u.robots.ListRobots(ctx)
	if err != nil {
		return FilterOptions{}, ErrInternal
	}

	apps, err := u.applications.ListApplications(ctx)
	if err != nil {
		return FilterOptions{}, ErrInternal
	}

	opts := FilterOptions{
		Robots:       make([]RobotItem, 0, len(robots)),
		Applications: make([]ApplicationItem, 0, len(apps)),
		Ratings:      []int{0, 1, 2, 3, 4},
	}
	for _, r := range robots {
		opts.Robots = append(opts.Robots, RobotItem{ID: r.ID, Name: r.Name})
	}
	for _, a := range apps {
		opts.Applications = append(opts.Applications, ApplicationItem{ID: a.ID, Name: a.Name, Robot: a.Robot})
	}
	return opts, nil
}

// FilterEmployees with no criteria is the identity filter over the fact
// table: every employee with at least one skill row.
func (u *Filter) FilterEmployees(ctx context.Context, criteria FilterCriteria) ([]EmployeeItem, error) {
	items, err := u.facts.FilterEmployees(ctx, criteria.Robot, criteria.Application, criteria.Rating)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]EmployeeItem, 0, len(items))
	for _, it := range items {
		out = append(out, EmployeeItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}
