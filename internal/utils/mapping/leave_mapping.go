package mapping

import (
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/models"
)

// ToModelLeave converts a domain LeaveEntry to a model Leave, parsing its dates.
func ToModelLeave(d domain.LeaveEntry) (models.Leave, error) {
	date, err := domain.ParseDate(d.Date)
	if err != nil {
		return models.Leave{}, fmt.Errorf("leave date: %w", err)
	}
	weekStart, err := domain.ParseDate(d.WeekStart)
	if err != nil {
		return models.Leave{}, fmt.Errorf("leave week_start: %w", err)
	}
	return models.Leave{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       date,
		WeekStart:  weekStart,
		Slot:       d.Slot,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// ToDomainLeave converts a model Leave to a domain LeaveEntry
func ToDomainLeave(m models.Leave) domain.LeaveEntry {
	return domain.LeaveEntry{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       domain.FormatDate(m.Date),
		WeekStart:  domain.FormatDate(m.WeekStart),
		Slot:       m.Slot,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainLeaveSlice(ms []models.Leave) []domain.LeaveEntry {
	ds := make([]domain.LeaveEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeave(m)
	}
	return ds
}
