package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.SearchUsecase
}

func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {
	result, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.SearchResponse{Type: result.Type}
	switch result.Type {
	case usecase.SearchTypeApplication:
		facts := make([]dto.SearchFactResponse, 0, len(result.Facts))
		for _, f := range result.Facts {
			facts = append(facts, dto.SearchFactResponse{
				Robot:       f.Robot,
				Application: f.Application,
				EmployeeID:  f.EmployeeID,
				Employee:    f.Employee,
				Rating:      f.Rating,
			})
		}
		res.Results = facts
	case usecase.SearchTypeEmployee:
		employees := make([]dto.EmployeeResponse, 0, len(result.Employees))
		for _, e := range result.Employees {
			employees = append(employees, dto.EmployeeResponse{ID: e.ID, Name: e.Name})
		}
		res.Results = employees
	default:
		res.Results = []struct{}{}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
