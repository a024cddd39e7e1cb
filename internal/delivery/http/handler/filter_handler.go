package handler

import (
	"strconv"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FilterHandler struct {
	uc usecase.FilterUsecase
}

func NewFilterHandler(uc usecase.FilterUsecase) *FilterHandler {
	return &FilterHandler{uc: uc}
}

func (h *FilterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/filters")
	grp.Get("/", h.Options)
	grp.Get("/search", h.Search)
}

func (h *FilterHandler) Options(c fiber.Ctx) error {
	opts, err := h.uc.ListOptions(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.FilterOptionsResponse{
		Robots:       make([]dto.RobotResponse, 0, len(opts.Robots)),
		Applications: make([]dto.ApplicationOptionResponse, 0, len(opts.Applications)),
		Ratings:      opts.Ratings,
	}
	for _, r := range opts.Robots {
		res.Robots = append(res.Robots, dto.RobotResponse{ID: r.ID, Name: r.Name})
	}
	for _, a := range opts.Applications {
		res.Applications = append(res.Applications, dto.ApplicationOptionResponse{ID: a.ID, Name: a.Name, Robot: a.Robot})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *FilterHandler) Search(c fiber.Ctx) error {
	criteria := usecase.FilterCriteria{
		Robot:       optionalStringQuery(c, "robot"),
		Application: optionalStringQuery(c, "application"),
	}

	if s := c.Query("rating"); s != "" {
		rating, err := strconv.Atoi(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		criteria.Rating = &rating
	}

	items, err := h.uc.FilterEmployees(c.Context(), criteria)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.EmployeeResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.EmployeeResponse{ID: it.ID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// An absent query parameter must stay nil so the filter treats it as a
// wildcard rather than matching the empty string.
func optionalStringQuery(c fiber.Ctx, key string) *string {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	return &s
}
