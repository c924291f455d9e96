package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeEntry records extra hours worked by an employee on a date.
type OvertimeEntry struct {
	ID         string
	EmployeeID string
	Date       string
	Hours      decimal.Decimal
	CreatedAt  time.Time
}
