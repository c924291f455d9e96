package domain

import (
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LeaveKind classifies a leave day.
type LeaveKind string

const (
	LeaveKindUnpaid       LeaveKind = "unpaid"
	LeaveKindAnnual       LeaveKind = "annual"
	LeaveKindCompensatory LeaveKind = "compensatory"
)

// IsValid reports whether k is one of the known kinds.
func (k LeaveKind) IsValid() bool {
	switch k {
	case LeaveKindUnpaid, LeaveKindAnnual, LeaveKindCompensatory:
		return true
	}
	return false
}

// LeaveTypeEntry classifies the leave an employee takes on a date.
type LeaveTypeEntry struct {
	ID         string
	EmployeeID string
	Date       string
	LeaveType  LeaveKind
	Hours      *decimal.Decimal // required for compensatory leave
	CreatedAt  time.Time
}

// Validate checks the cross-field rules of a leave-type entry.
func (e LeaveTypeEntry) Validate() error {
	if !e.LeaveType.IsValid() {
		return apperrors.ValidationFailed(errUnknownLeaveKind(e.LeaveType))
	}
	if e.LeaveType == LeaveKindCompensatory && (e.Hours == nil || e.Hours.IsZero()) {
		return apperrors.MissingHours()
	}
	return nil
}

type errUnknownLeaveKind LeaveKind

func (e errUnknownLeaveKind) Error() string {
	return "unknown leave type " + string(e)
}
