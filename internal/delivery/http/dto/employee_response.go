package dto

import "github.com/google/uuid"

type EmployeeSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	RobotCount int       `json:"robot_count"`
}

type SkillEntryResponse struct {
	Application string `json:"application"`
	Rating      int    `json:"rating"`
}

// EmployeeMatrixResponse maps robot name to that robot's skill entries,
// ordered by application name within each group.
type EmployeeMatrixResponse map[string][]SkillEntryResponse

type EmployeeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
