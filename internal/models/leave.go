package models

import "time"

// Leave is a row of the leaves table. Date and WeekStart are DATE columns.
type Leave struct {
	ID         string    `db:"id"`
	EmployeeID string    `db:"employee_id"`
	Date       time.Time `db:"date"`
	WeekStart  time.Time `db:"week_start"`
	Slot       int       `db:"slot"`
	CreatedAt  time.Time `db:"created_at"`
}
