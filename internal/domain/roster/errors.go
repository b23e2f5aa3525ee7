package roster

import "errors"

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffNameRequired  = errors.New("staff name is required")
	ErrInvalidRequestData = errors.New("invalid request data")
)
