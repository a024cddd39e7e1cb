package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRating       = errors.New("invalid rating")
	ErrRobotNotFound       = errors.New("robot not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInternal            = errors.New("internal error")
)

func isValidRating(v int) bool {
	return v >= 0 && v <= 4
}
