package models

import "time"

// Employee is a row of the employees table.
type Employee struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ShortName string    `db:"short_name"`
	Position  string    `db:"position"`
	WorkType  string    `db:"work_type"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}
