package handlers_test

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeService) SeedDefaultRoster(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock LeaveService ---
type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (*domain.LeaveEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveEntry), args.Error(1)
}

func (m *MockLeaveService) ListLeaves(ctx context.Context, params dto.ListLeavesParams) ([]domain.LeaveEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntry), args.Error(1)
}

func (m *MockLeaveService) DeleteLeave(ctx context.Context, leaveID string) error {
	args := m.Called(ctx, leaveID)
	return args.Error(0)
}

var _ portssvc.LeaveSvcFacade = (*MockLeaveService)(nil)

// --- Mock OvertimeService ---
type MockOvertimeService struct {
	mock.Mock
}

func (m *MockOvertimeService) CreateOvertime(ctx context.Context, req dto.CreateOvertimeRequest) (*domain.OvertimeEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OvertimeEntry), args.Error(1)
}

func (m *MockOvertimeService) ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OvertimeEntry), args.Error(1)
}

func (m *MockOvertimeService) DeleteOvertime(ctx context.Context, overtimeID string) error {
	args := m.Called(ctx, overtimeID)
	return args.Error(0)
}

var _ portssvc.OvertimeSvcFacade = (*MockOvertimeService)(nil)

// --- Mock LeaveTypeService ---
type MockLeaveTypeService struct {
	mock.Mock
}

func (m *MockLeaveTypeService) CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest) (*domain.LeaveTypeEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveTypeEntry), args.Error(1)
}

func (m *MockLeaveTypeService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveTypeEntry), args.Error(1)
}

func (m *MockLeaveTypeService) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	args := m.Called(ctx, leaveTypeID)
	return args.Error(0)
}

var _ portssvc.LeaveTypeSvcFacade = (*MockLeaveTypeService)(nil)
