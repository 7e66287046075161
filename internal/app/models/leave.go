package models

import (
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
)

// LeaveType is the category of a leave request
type LeaveType string

const (
	LeaveHomeVisit LeaveType = "HOME_VISIT"
	LeaveMedical   LeaveType = "MEDICAL"
	LeaveEmergency LeaveType = "EMERGENCY"
	LeavePersonal  LeaveType = "PERSONAL"
	LeaveFestival  LeaveType = "FESTIVAL"
	LeaveAcademic  LeaveType = "ACADEMIC"
	LeaveOther     LeaveType = "OTHER"
)

// Valid reports whether t is a known leave type
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveHomeVisit, LeaveMedical, LeaveEmergency, LeavePersonal, LeaveFestival, LeaveAcademic, LeaveOther:
		return true
	}
	return false
}

// LeaveStatus is the decision state of a leave application.
// PENDING is initial; APPROVED and REJECTED are terminal.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveApplication represents a student's request to leave and re-enter the
// hostel over an inclusive date range. Gate passes exist only once approved.
type LeaveApplication struct {
	ID            int64       `db:"id"`
	StudentID     int64       `db:"student_id"`
	LeaveType     LeaveType   `db:"leave_type"`
	FromDate      time.Time   `db:"from_date"`
	ToDate        time.Time   `db:"to_date"`
	TotalDays     int         `db:"total_days"`
	Reason        string      `db:"reason"`
	Status        LeaveStatus `db:"status"`
	AdminComments *string     `db:"admin_comments"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`

	// Relational fields
	ExitPass  *GatePass `db:"-"`
	EntryPass *GatePass `db:"-"`
}

// PassFor returns the embedded pass for the given purpose, or nil
func (a *LeaveApplication) PassFor(purpose gatepass.Purpose) *GatePass {
	switch purpose {
	case gatepass.PurposeExit:
		return a.ExitPass
	case gatepass.PurposeEntry:
		return a.EntryPass
	}
	return nil
}

// GatePass is one direction's signed, time-bounded, single-use credential.
// used flips to true exactly once, on first successful verification.
type GatePass struct {
	LeaveApplicationID int64            `db:"leave_application_id"`
	Purpose            gatepass.Purpose `db:"purpose"`
	Code               string           `db:"code"`
	ValidFrom          time.Time        `db:"valid_from"`
	ValidUntil         time.Time        `db:"valid_until"`
	Used               bool             `db:"used"`
	UsedAt             *time.Time       `db:"used_at"`
}
