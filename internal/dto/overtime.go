package dto

import (
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOvertimeRequest defines the data needed to record overtime.
// Hours carries no range check.
type CreateOvertimeRequest struct {
	EmployeeID string           `json:"employee_id" binding:"required"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	Hours      *decimal.Decimal `json:"hours" binding:"required"`
}

// OvertimeResponse defines the data returned for an overtime entry.
type OvertimeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Hours      float64   `json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToOvertimeResponse converts a domain.OvertimeEntry to OvertimeResponse DTO
func ToOvertimeResponse(o *domain.OvertimeEntry) OvertimeResponse {
	return OvertimeResponse{
		ID:         o.ID,
		EmployeeID: o.EmployeeID,
		Date:       o.Date,
		Hours:      o.Hours.InexactFloat64(),
		CreatedAt:  o.CreatedAt,
	}
}

func ToListOvertimeResponse(entries []domain.OvertimeEntry) []OvertimeResponse {
	res := make([]OvertimeResponse, len(entries))
	for i := range entries {
		res[i] = ToOvertimeResponse(&entries[i])
	}
	return res
}
