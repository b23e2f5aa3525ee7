package leave

import "errors"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidWeekStart  = errors.New("week start must be a Monday in YYYY-MM-DD format")
)
