package dto

import (
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaveTypeRequest defines the data needed to classify a leave day.
// Hours is required, and must be non-zero, for compensatory leave.
type CreateLeaveTypeRequest struct {
	EmployeeID string           `json:"employee_id" binding:"required"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	LeaveType  string           `json:"leave_type" binding:"required,oneof=unpaid annual compensatory"`
	Hours      *decimal.Decimal `json:"hours"`
}

// LeaveTypeResponse defines the data returned for a leave-type entry.
type LeaveTypeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	LeaveType  string    `json:"leave_type"`
	Hours      *float64  `json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToLeaveTypeResponse converts a domain.LeaveTypeEntry to LeaveTypeResponse DTO
func ToLeaveTypeResponse(l *domain.LeaveTypeEntry) LeaveTypeResponse {
	res := LeaveTypeResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date,
		LeaveType:  string(l.LeaveType),
		CreatedAt:  l.CreatedAt,
	}
	if l.Hours != nil {
		h := l.Hours.InexactFloat64()
		res.Hours = &h
	}
	return res
}

func ToListLeaveTypeResponse(entries []domain.LeaveTypeEntry) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(entries))
	for i := range entries {
		res[i] = ToLeaveTypeResponse(&entries[i])
	}
	return res
}
