package domain

import "time"

// LeaveEntry is one employee absent on one calendar date.
type LeaveEntry struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	WeekStart  string // YYYY-MM-DD, grouping only
	Slot       int    // client-assigned position in the week grid
	CreatedAt  time.Time
}

// LeaveFilter narrows a leave listing. Empty fields are ignored.
type LeaveFilter struct {
	WeekStart string
}
