package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allow(domain.DaySnapshot) error { return nil }

func TestSeedEmployees_OnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	n, err := repos.EmployeeRepo.SeedEmployees(ctx, domain.DefaultRoster)
	require.NoError(t, err)
	assert.Equal(t, len(domain.DefaultRoster), n)

	n, err = repos.EmployeeRepo.SeedEmployees(ctx, domain.DefaultRoster)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduleLeave_ConstraintsAfterAdmit(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	require.NoError(t, repos.EmployeeRepo.SaveEmployee(ctx, domain.Employee{ID: "elif"}))

	entry := domain.LeaveEntry{ID: "l1", EmployeeID: "elif", Date: "2025-03-10", WeekStart: "2025-03-10"}
	require.NoError(t, repos.LeaveRepo.ScheduleLeave(ctx, entry, allow))

	var seen domain.DaySnapshot
	entry.ID = "l2"
	err := repos.LeaveRepo.ScheduleLeave(ctx, entry, func(day domain.DaySnapshot) error {
		seen = day
		return nil
	})
	assert.Equal(t, apperrors.KindDuplicateEntry, apperrors.KindOf(err))
	assert.Equal(t, []string{"elif"}, seen.EmployeeIDs)

	entry = domain.LeaveEntry{ID: "l3", EmployeeID: "ghost", Date: "2025-03-10"}
	assert.Equal(t, apperrors.KindInvalidEmployee, apperrors.KindOf(repos.LeaveRepo.ScheduleLeave(ctx, entry, allow)))
}

func TestListLeaves_WeekFilter(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	require.NoError(t, repos.EmployeeRepo.SaveEmployee(ctx, domain.Employee{ID: "elif"}))
	require.NoError(t, repos.LeaveRepo.ScheduleLeave(ctx, domain.LeaveEntry{ID: "a", EmployeeID: "elif", Date: "2025-03-11", WeekStart: "2025-03-10"}, allow))
	require.NoError(t, repos.LeaveRepo.ScheduleLeave(ctx, domain.LeaveEntry{ID: "b", EmployeeID: "elif", Date: "2025-03-18", WeekStart: "2025-03-17"}, allow))

	leaves, err := repos.LeaveRepo.ListLeaves(ctx, domain.LeaveFilter{WeekStart: "2025-03-17"})
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "b", leaves[0].ID)

	all, err := repos.LeaveRepo.ListLeaves(ctx, domain.LeaveFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repos.LeaveRepo.ListLeaves(ctx, domain.LeaveFilter{WeekStart: "10-03-2025"})
	assert.Equal(t, apperrors.KindValidationFailed, apperrors.KindOf(err))
}

func TestDeleteEmployee_RestrictedByDependents(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	require.NoError(t, repos.EmployeeRepo.SaveEmployee(ctx, domain.Employee{ID: "elif", CreatedAt: time.Now()}))
	require.NoError(t, repos.OvertimeRepo.SaveOvertime(ctx, domain.OvertimeEntry{ID: "o1", EmployeeID: "elif", Date: "2025-03-10", Hours: decimal.NewFromInt(2)}))

	deps, err := repos.EmployeeRepo.CountDependents(ctx, "elif")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"overtime": 1}, deps)

	err = repos.EmployeeRepo.DeleteEmployee(ctx, "elif")
	assert.Equal(t, apperrors.KindHasDependentRecords, apperrors.KindOf(err))

	require.NoError(t, repos.OvertimeRepo.DeleteOvertime(ctx, "o1"))
	require.NoError(t, repos.EmployeeRepo.DeleteEmployee(ctx, "elif"))
	assert.ErrorIs(t, repos.EmployeeRepo.DeleteEmployee(ctx, "elif"), apperrors.ErrNotFound)
}

func TestEntries_RequireKnownEmployee(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	err := repos.LeaveTypeRepo.SaveLeaveType(ctx, domain.LeaveTypeEntry{ID: "t1", EmployeeID: "ghost", LeaveType: domain.LeaveKindAnnual})
	assert.Equal(t, apperrors.KindInvalidEmployee, apperrors.KindOf(err))

	err = repos.OvertimeRepo.SaveOvertime(ctx, domain.OvertimeEntry{ID: "o1", EmployeeID: "ghost"})
	assert.Equal(t, apperrors.KindInvalidEmployee, apperrors.KindOf(err))
}
