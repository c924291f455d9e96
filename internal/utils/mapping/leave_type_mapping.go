package mapping

import (
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelLeaveType converts a domain LeaveTypeEntry to a model LeaveType
func ToModelLeaveType(d domain.LeaveTypeEntry) (models.LeaveType, error) {
	date, err := domain.ParseDate(d.Date)
	if err != nil {
		return models.LeaveType{}, fmt.Errorf("leave type date: %w", err)
	}
	m := models.LeaveType{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       date,
		LeaveType:  string(d.LeaveType),
		CreatedAt:  d.CreatedAt,
	}
	if d.Hours != nil {
		m.Hours = decimal.NewNullDecimal(*d.Hours)
	}
	return m, nil
}

// ToDomainLeaveType converts a model LeaveType to a domain LeaveTypeEntry
func ToDomainLeaveType(m models.LeaveType) domain.LeaveTypeEntry {
	d := domain.LeaveTypeEntry{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       domain.FormatDate(m.Date),
		LeaveType:  domain.LeaveKind(m.LeaveType),
		CreatedAt:  m.CreatedAt,
	}
	if m.Hours.Valid {
		h := m.Hours.Decimal
		d.Hours = &h
	}
	return d
}

func ToDomainLeaveTypeSlice(ms []models.LeaveType) []domain.LeaveTypeEntry {
	ds := make([]domain.LeaveTypeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveType(m)
	}
	return ds
}
