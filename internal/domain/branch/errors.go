package branch

import "errors"

var (
	ErrBranchNotFound = errors.New("branch not found")
	ErrBranchClosed   = errors.New("branch is closed on that day")
)
