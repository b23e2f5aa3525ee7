package schedule

import "errors"

var (
	ErrGridNotFound       = errors.New("schedule grid not found for that week")
	ErrBranchClosed       = errors.New("branch is closed on that day")
	ErrClinicReceptionist = errors.New("clinic branches have no receptionist slot")
	ErrCellFull           = errors.New("no free slot for that role on that day")
	ErrAlreadyAssigned    = errors.New("staff member already assigned to that slot")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidRole        = errors.New("role must be nurse or receptionist")
	ErrShiftConflict      = errors.New("shift overlaps an existing assignment on that day")
	ErrInvalidRequestData = errors.New("invalid request data")
)
