package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	uc usecase.MatrixUsecase
}

func NewEmployeeHandler(uc usecase.MatrixUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Detail)
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.EmployeeSummaryResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.EmployeeSummaryResponse{
			ID:         it.ID,
			Name:       it.Name,
			RobotCount: it.RobotCount,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EmployeeHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	grouped, err := h.uc.GetEmployeeMatrix(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make(dto.EmployeeMatrixResponse, len(grouped))
	for robot, entries := range grouped {
		group := make([]dto.SkillEntryResponse, 0, len(entries))
		for _, e := range entries {
			group = append(group, dto.SkillEntryResponse{Application: e.Application, Rating: e.Rating})
		}
		res[robot] = group
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
