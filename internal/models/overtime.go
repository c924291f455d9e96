package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overtime is a row of the overtime table.
type Overtime struct {
	ID         string          `db:"id"`
	EmployeeID string          `db:"employee_id"`
	Date       time.Time       `db:"date"`
	Hours      decimal.Decimal `db:"hours"`
	CreatedAt  time.Time       `db:"created_at"`
}
