package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Position classifies an employee within the team.
type Position string

const (
	PositionTL    Position = "TL"
	PositionAgent Position = "Agent"
)

// WorkType is where an employee usually works from.
type WorkType string

const (
	WorkTypeOffice     WorkType = "Office"
	WorkTypeHomeOffice WorkType = "HomeOffice"
)

// DefaultColor is used when no palette colour applies.
const DefaultColor = "#607D8B"

// ColorPalette is cycled through for employees created without a colour.
var ColorPalette = []string{
	"#E91E63", "#2196F3", "#FF5722", "#9C27B0", "#00BCD4", "#4CAF50",
	"#CDDC39", "#FF9800", "#795548", "#607D8B", "#F44336", "#673AB7",
	"#3F51B5", "#009688", "#8BC34A", "#FFC107", "#FF5252", "#7C4DFF",
}

// DisplayName renders a stored name such as "AYÇA DEMİR" as "Ayça Demir",
// using Turkish casing rules.
func DisplayName(name string) string {
	return cases.Title(language.Turkish).String(name)
}

// PaletteColor picks the palette colour for the n-th employee.
func PaletteColor(employeeCount int) string {
	if employeeCount < 0 {
		employeeCount = -employeeCount
	}
	return ColorPalette[employeeCount%len(ColorPalette)]
}

// Employee is a team member leave, overtime and leave-type entries refer to.
type Employee struct {
	ID        string
	Name      string
	ShortName string
	Position  Position
	WorkType  WorkType
	Color     string
	CreatedAt time.Time
}

// EmployeeChanges holds the fields of a partial employee update. Nil means unchanged.
type EmployeeChanges struct {
	Name      *string
	ShortName *string
	Position  *Position
	WorkType  *WorkType
	Color     *string
}

// IsEmpty reports whether no field is set.
func (c EmployeeChanges) IsEmpty() bool {
	return c.Name == nil && c.ShortName == nil && c.Position == nil && c.WorkType == nil && c.Color == nil
}

// Apply returns a copy of e with the set fields replaced.
func (c EmployeeChanges) Apply(e Employee) Employee {
	if c.Name != nil {
		e.Name = *c.Name
	}
	if c.ShortName != nil {
		e.ShortName = *c.ShortName
	}
	if c.Position != nil {
		e.Position = *c.Position
	}
	if c.WorkType != nil {
		e.WorkType = *c.WorkType
	}
	if c.Color != nil {
		e.Color = *c.Color
	}
	return e
}
