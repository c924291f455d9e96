package services_test

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEmployeeRepository) CountDependents(ctx context.Context, employeeID string) (map[string]int, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, changes domain.EmployeeChanges) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SeedEmployees(ctx context.Context, employees []domain.Employee) (int, error) {
	args := m.Called(ctx, employees)
	return args.Int(0), args.Error(1)
}

// --- Mock LeaveRepository ---
type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) ListLeaves(ctx context.Context, filter domain.LeaveFilter) ([]domain.LeaveEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntry), args.Error(1)
}

// ScheduleLeave runs admit against the snapshot given as the first return value, if any.
func (m *MockLeaveRepository) ScheduleLeave(ctx context.Context, entry domain.LeaveEntry, admit portsrepo.AdmitFunc) error {
	args := m.Called(ctx, entry, admit)
	if day, ok := args.Get(0).(domain.DaySnapshot); ok {
		if err := admit(day); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockLeaveRepository) DeleteLeave(ctx context.Context, leaveID string) error {
	args := m.Called(ctx, leaveID)
	return args.Error(0)
}

// --- Mock OvertimeRepository ---
type MockOvertimeRepository struct {
	mock.Mock
}

func (m *MockOvertimeRepository) SaveOvertime(ctx context.Context, entry domain.OvertimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOvertimeRepository) ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OvertimeEntry), args.Error(1)
}

func (m *MockOvertimeRepository) DeleteOvertime(ctx context.Context, overtimeID string) error {
	args := m.Called(ctx, overtimeID)
	return args.Error(0)
}

// --- Mock LeaveTypeRepository ---
type MockLeaveTypeRepository struct {
	mock.Mock
}

func (m *MockLeaveTypeRepository) SaveLeaveType(ctx context.Context, entry domain.LeaveTypeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaveTypeRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveTypeEntry), args.Error(1)
}

func (m *MockLeaveTypeRepository) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	args := m.Called(ctx, leaveTypeID)
	return args.Error(0)
}
