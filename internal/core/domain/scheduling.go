package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
)

const (
	DefaultDailyLeaveCap = 7
	ReducedDailyLeaveCap = 3
)

// ExclusivePair names two employees that may never be on leave the same day.
type ExclusivePair struct {
	A string
	B string
}

// Partner returns the other member of the pair, if employeeID is a member.
func (p ExclusivePair) Partner(employeeID string) (string, bool) {
	switch employeeID {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return "", false
}

// SchedulingPolicy holds the staffing rules a new leave entry is admitted against.
//
// While any anchor employee is on leave on a date the daily cap drops from
// DefaultDailyCap to ReducedDailyCap.
type SchedulingPolicy struct {
	DefaultDailyCap   int
	ReducedDailyCap   int
	AnchorEmployeeIDs []string
	ExclusivePairs    []ExclusivePair
}

// DefaultSchedulingPolicy is the team's standing policy.
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		DefaultDailyCap:   DefaultDailyLeaveCap,
		ReducedDailyCap:   ReducedDailyLeaveCap,
		AnchorEmployeeIDs: []string{"ayca_cisem"},
		ExclusivePairs:    []ExclusivePair{{A: "rabia", B: "ayca_demir"}},
	}
}

// Validate checks the policy is usable.
func (p SchedulingPolicy) Validate() error {
	if p.DefaultDailyCap <= 0 || p.ReducedDailyCap <= 0 {
		return fmt.Errorf("daily leave caps must be positive, got default=%d reduced=%d", p.DefaultDailyCap, p.ReducedDailyCap)
	}
	for _, pair := range p.ExclusivePairs {
		if pair.A == "" || pair.B == "" || pair.A == pair.B {
			return fmt.Errorf("invalid exclusive pair %q:%q", pair.A, pair.B)
		}
	}
	return nil
}

// ParseExclusivePairs parses "a:b,c:d" into pairs. Blank input yields no pairs.
func ParseExclusivePairs(s string) ([]ExclusivePair, error) {
	var pairs []ExclusivePair
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		a, b, ok := strings.Cut(item, ":")
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("invalid exclusive pair %q, expected id:id", item)
		}
		pairs = append(pairs, ExclusivePair{A: a, B: b})
	}
	return pairs, nil
}

// DaySnapshot is the state of one date in the leaves collection.
type DaySnapshot struct {
	Date string
	// EmployeeIDs holds one element per existing leave entry on Date.
	EmployeeIDs []string
}

// Count is the number of leave entries on the date.
func (s DaySnapshot) Count() int {
	return len(s.EmployeeIDs)
}

// Has reports whether employeeID already has leave on the date.
func (s DaySnapshot) Has(employeeID string) bool {
	return slices.Contains(s.EmployeeIDs, employeeID)
}

// LeaveProposal is the part of a new leave entry the rules look at.
type LeaveProposal struct {
	EmployeeID string
	Date       string
	// Names maps employee ids to display names used in rejection messages.
	// Ids without a name are shown as is.
	Names map[string]string
}

func (p LeaveProposal) displayName(employeeID string) string {
	if name := p.Names[employeeID]; name != "" {
		return name
	}
	return employeeID
}

// AdmissionFacts are the observations the rules are evaluated over.
type AdmissionFacts struct {
	EmployeeExists bool
	Today          string
	LeavesOnDate   int
	AnchorOnLeave  bool
	// ConflictPair is the exclusive pair whose other member is already on leave, or nil.
	ConflictPair  *ExclusivePair
	AlreadyOnDate bool
}

// Facts derives the admission facts for proposal from the day snapshot.
func (p SchedulingPolicy) Facts(proposal LeaveProposal, employeeExists bool, today string, day DaySnapshot) AdmissionFacts {
	facts := AdmissionFacts{
		EmployeeExists: employeeExists,
		Today:          today,
		LeavesOnDate:   day.Count(),
		AlreadyOnDate:  day.Has(proposal.EmployeeID),
	}
	for _, anchor := range p.AnchorEmployeeIDs {
		if day.Has(anchor) {
			facts.AnchorOnLeave = true
			break
		}
	}
	for _, pair := range p.ExclusivePairs {
		if partner, ok := pair.Partner(proposal.EmployeeID); ok && day.Has(partner) {
			facts.ConflictPair = &pair
			break
		}
	}
	return facts
}

// Partners lists the employees employeeID may not share a leave day with.
func (p SchedulingPolicy) Partners(employeeID string) []string {
	var partners []string
	for _, pair := range p.ExclusivePairs {
		if partner, ok := pair.Partner(employeeID); ok {
			partners = append(partners, partner)
		}
	}
	return partners
}

// DailyCap is the cap in force given whether an anchor employee is on leave.
func (p SchedulingPolicy) DailyCap(anchorOnLeave bool) int {
	if anchorOnLeave {
		return p.ReducedDailyCap
	}
	return p.DefaultDailyCap
}

// Evaluate applies the rules in order and returns the first rejection, or nil.
func (p SchedulingPolicy) Evaluate(proposal LeaveProposal, f AdmissionFacts) error {
	if !f.EmployeeExists {
		return apperrors.InvalidEmployee()
	}
	if proposal.Date == f.Today {
		return apperrors.SameDayForbidden()
	}
	if f.ConflictPair != nil {
		return apperrors.PairConflict(proposal.displayName(f.ConflictPair.A), proposal.displayName(f.ConflictPair.B))
	}
	if maxSlots := p.DailyCap(f.AnchorOnLeave); f.LeavesOnDate >= maxSlots {
		return apperrors.CapacityExceeded(maxSlots)
	}
	if f.AlreadyOnDate {
		return apperrors.DuplicateEntry()
	}
	return nil
}

// Admit is Facts followed by Evaluate.
func (p SchedulingPolicy) Admit(proposal LeaveProposal, employeeExists bool, today string, day DaySnapshot) error {
	return p.Evaluate(proposal, p.Facts(proposal, employeeExists, today, day))
}
