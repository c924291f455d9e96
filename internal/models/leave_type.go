package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveType is a row of the leave_types table.
type LeaveType struct {
	ID         string              `db:"id"`
	EmployeeID string              `db:"employee_id"`
	Date       time.Time           `db:"date"`
	LeaveType  string              `db:"leave_type"`
	Hours      decimal.NullDecimal `db:"hours"`
	CreatedAt  time.Time           `db:"created_at"`
}
