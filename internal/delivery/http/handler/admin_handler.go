package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

type createApplicationRequest struct {
	Name    string    `json:"name"`
	RobotID uuid.UUID `json:"robot_id"`
}

type createEmployeeRequest struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
}

type updateEmployeeRequest struct {
	Name         *string `json:"name"`
	EmployeeCode *string `json:"employee_code"`
}

type createEmployeeWithSkillRequest struct {
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Robot        string `json:"robot"`
	Application  string `json:"application"`
	Rating       int    `json:"rating"`
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.CreateApplication)
	r.Post("/employees", h.CreateEmployee)
	r.Put("/employees/:id", h.UpdateEmployee)
	r.Post("/employee", h.CreateEmployeeWithSkill)
}

func (h *AdminHandler) CreateApplication(c fiber.Ctx) error {
	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateApplication(c.Context(), usecase.CreateApplicationInput{
		Name:    req.Name,
		RobotID: req.RobotID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.ApplicationResponse{ID: created.ID, Name: created.Name, RobotID: created.RobotID}
	return response.Success(c, fiber.StatusOK, "Application created successfully", res)
}

func (h *AdminHandler) CreateEmployee(c fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateEmployee(c.Context(), usecase.CreateEmployeeInput{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.EmployeeDetailResponse{ID: created.ID, Name: created.Name, EmployeeCode: created.EmployeeCode}
	return response.Success(c, fiber.StatusOK, "Employee created successfully", res)
}

func (h *AdminHandler) UpdateEmployee(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateEmployee(c.Context(), id, usecase.UpdateEmployeeInput{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.EmployeeDetailResponse{ID: updated.ID, Name: updated.Name, EmployeeCode: updated.EmployeeCode}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AdminHandler) CreateEmployeeWithSkill(c fiber.Ctx) error {
	var req createEmployeeWithSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	_, err := h.uc.CreateEmployeeWithSkill(c.Context(), usecase.CreateEmployeeWithSkillInput{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Robot:        req.Robot,
		Application:  req.Application,
		Rating:       req.Rating,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.MessageResponse{Message: "Employee and skill rating created successfully"}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
