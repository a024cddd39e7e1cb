package dto

import "github.com/google/uuid"

type ApplicationResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	RobotID uuid.UUID `json:"robot_id"`
}

type EmployeeDetailResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	EmployeeCode string    `json:"employee_code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
