package dto

import (
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// CreateLeaveRequest defines the data needed to book a leave day.
// Slot is opaque to the server; it only has to be present.
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	WeekStart  string `json:"week_start" binding:"required,datetime=2006-01-02"`
	Slot       *int   `json:"slot" binding:"required"`
}

// ListLeavesParams defines query parameters for listing leaves.
type ListLeavesParams struct {
	WeekStart string `form:"week_start" binding:"omitempty,datetime=2006-01-02"`
}

// LeaveResponse defines the data returned for a leave entry.
type LeaveResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	WeekStart  string    `json:"week_start"`
	Slot       int       `json:"slot"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToLeaveResponse converts a domain.LeaveEntry to LeaveResponse DTO
func ToLeaveResponse(l *domain.LeaveEntry) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date,
		WeekStart:  l.WeekStart,
		Slot:       l.Slot,
		CreatedAt:  l.CreatedAt,
	}
}

func ToListLeaveResponse(leaves []domain.LeaveEntry) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i := range leaves {
		res[i] = ToLeaveResponse(&leaves[i])
	}
	return res
}
