package mapping

import (
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/models"
)

// ToModelOvertime converts a domain OvertimeEntry to a model Overtime
func ToModelOvertime(d domain.OvertimeEntry) (models.Overtime, error) {
	date, err := domain.ParseDate(d.Date)
	if err != nil {
		return models.Overtime{}, fmt.Errorf("overtime date: %w", err)
	}
	return models.Overtime{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       date,
		Hours:      d.Hours,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// ToDomainOvertime converts a model Overtime to a domain OvertimeEntry
func ToDomainOvertime(m models.Overtime) domain.OvertimeEntry {
	return domain.OvertimeEntry{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       domain.FormatDate(m.Date),
		Hours:      m.Hours,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainOvertimeSlice(ms []models.Overtime) []domain.OvertimeEntry {
	ds := make([]domain.OvertimeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOvertime(m)
	}
	return ds
}
