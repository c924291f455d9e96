package mapping

import (
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		ID:        d.ID,
		Name:      d.Name,
		ShortName: d.ShortName,
		Position:  string(d.Position),
		WorkType:  string(d.WorkType),
		Color:     d.Color,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: m.ShortName,
		Position:  domain.Position(m.Position),
		WorkType:  domain.WorkType(m.WorkType),
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
