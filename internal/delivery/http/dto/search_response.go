package dto

import "github.com/google/uuid"

// SearchResponse carries one result category; the shape of Results
// depends on Type ("application" → fact rows, "employee" → employees,
// "empty"/"none" → empty slice).
type SearchResponse struct {
	Type    string      `json:"type"`
	Results interface{} `json:"results"`
}

type SearchFactResponse struct {
	Robot       string    `json:"robot"`
	Application string    `json:"application"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Employee    string    `json:"employee"`
	Rating      int       `json:"rating"`
}
