// Package memory implements the repository ports on process memory. It backs
// STORAGE_BACKEND=memory and the tests that need real repository semantics.
package memory

import (
	"sort"
	"sync"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
)

// Store holds every collection behind one lock, which also serializes
// leave scheduling the way the per-date advisory lock does in PostgreSQL.
type Store struct {
	mu         sync.Mutex
	employees  map[string]domain.Employee
	leaves     map[string]domain.LeaveEntry
	overtime   map[string]domain.OvertimeEntry
	leaveTypes map[string]domain.LeaveTypeEntry
}

func NewStore() *Store {
	return &Store{
		employees:  map[string]domain.Employee{},
		leaves:     map[string]domain.LeaveEntry{},
		overtime:   map[string]domain.OvertimeEntry{},
		leaveTypes: map[string]domain.LeaveTypeEntry{},
	}
}

// NewRepositoryProvider exposes store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:  &employeeRepository{store: store},
		LeaveRepo:     &leaveRepository{store: store},
		OvertimeRepo:  &overtimeRepository{store: store},
		LeaveTypeRepo: &leaveTypeRepository{store: store},
	}
}

// dependentsLocked counts rows referencing employeeID. Callers hold s.mu.
func (s *Store) dependentsLocked(employeeID string) map[string]int {
	deps := map[string]int{}
	for _, l := range s.leaves {
		if l.EmployeeID == employeeID {
			deps["leaves"]++
		}
	}
	for _, o := range s.overtime {
		if o.EmployeeID == employeeID {
			deps["overtime"]++
		}
	}
	for _, lt := range s.leaveTypes {
		if lt.EmployeeID == employeeID {
			deps["leave_types"]++
		}
	}
	return deps
}

func sortedValues[T any](m map[string]T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
