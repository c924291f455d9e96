package dto

import (
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
// Position and WorkType default to Agent and Office; an empty Color is
// picked from the palette.
type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
	Position  string `json:"position" binding:"omitempty,oneof=TL Agent"`
	WorkType  string `json:"work_type" binding:"omitempty,oneof=Office HomeOffice"`
	Color     string `json:"color" binding:"omitempty,len=7,hexcolor"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" binding:"omitnil,min=1"`
	ShortName *string `json:"short_name" binding:"omitnil,min=1"`
	Position  *string `json:"position" binding:"omitnil,oneof=TL Agent"`
	WorkType  *string `json:"work_type" binding:"omitnil,oneof=Office HomeOffice"`
	Color     *string `json:"color" binding:"omitnil,len=7,hexcolor"`
}

// ToChanges converts the request into domain changes.
func (r UpdateEmployeeRequest) ToChanges() domain.EmployeeChanges {
	changes := domain.EmployeeChanges{
		Name:      r.Name,
		ShortName: r.ShortName,
		Color:     r.Color,
	}
	if r.Position != nil {
		p := domain.Position(*r.Position)
		changes.Position = &p
	}
	if r.WorkType != nil {
		w := domain.WorkType(*r.WorkType)
		changes.WorkType = &w
	}
	return changes
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Position  string    `json:"position"`
	WorkType  string    `json:"work_type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		ShortName: e.ShortName,
		Position:  string(e.Position),
		WorkType:  string(e.WorkType),
		Color:     e.Color,
		CreatedAt: e.CreatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
