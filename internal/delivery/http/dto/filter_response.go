package dto

import "github.com/google/uuid"

type RobotResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ApplicationOptionResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Robot string    `json:"robot"`
}

type FilterOptionsResponse struct {
	Robots       []RobotResponse             `json:"robots"`
	Applications []ApplicationOptionResponse `json:"applications"`
	Ratings      []int                       `json:"ratings"`
}
