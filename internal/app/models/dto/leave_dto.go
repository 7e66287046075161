package dto

import (
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
)

// CreateLeaveRequest is the payload for submitting a leave application.
// Dates are inclusive calendar days in YYYY-MM-DD form.
type CreateLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required" example:"HOME_VISIT"`
	FromDate  string `json:"fromDate" binding:"required" example:"2025-06-10"`
	ToDate    string `json:"toDate" binding:"required" example:"2025-06-15"`
	Reason    string `json:"reason" binding:"required,max=500" example:"family event"`
}

// DecideLeaveRequest carries the admin's comments for an approve/reject decision.
// Comments are optional on approval and mandatory on rejection.
type DecideLeaveRequest struct {
	AdminComments string `json:"adminComments" example:"ok"`
}

// GatePassResponse is one direction's credential as returned to the student
type GatePassResponse struct {
	Purpose    string     `json:"purpose" example:"EXIT"`
	Code       string     `json:"code"`
	QRImage    string     `json:"qrImage,omitempty"`
	ValidFrom  time.Time  `json:"validFrom"`
	ValidUntil time.Time  `json:"validUntil"`
	Used       bool       `json:"used"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`
}

// LeaveApplicationResponse is the API view of a leave application
type LeaveApplicationResponse struct {
	ID            int64             `json:"id"`
	StudentID     int64             `json:"studentId"`
	LeaveType     string            `json:"leaveType"`
	FromDate      string            `json:"fromDate"`
	ToDate        string            `json:"toDate"`
	TotalDays     int               `json:"totalDays"`
	Reason        string            `json:"reason"`
	Status        string            `json:"status"`
	AdminComments *string           `json:"adminComments,omitempty"`
	ExitPass      *GatePassResponse `json:"exitPass,omitempty"`
	EntryPass     *GatePassResponse `json:"entryPass,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// LeaveListResponse is a paginated list of leave applications
type LeaveListResponse struct {
	Applications []LeaveApplicationResponse `json:"applications"`
	Pagination   PaginationInfo             `json:"pagination"`
}

// LeavePassesResponse carries both credentials for an approved application
type LeavePassesResponse struct {
	LeaveApplicationID int64            `json:"leaveApplicationId"`
	ExitPass           GatePassResponse `json:"exitPass"`
	EntryPass          GatePassResponse `json:"entryPass"`
}

// FromGatePass converts a pass model into its API view. The QR image is filled
// in separately because list endpoints skip rendering.
func FromGatePass(p *models.GatePass) *GatePassResponse {
	if p == nil {
		return nil
	}
	return &GatePassResponse{
		Purpose:    string(p.Purpose),
		Code:       p.Code,
		ValidFrom:  p.ValidFrom,
		ValidUntil: p.ValidUntil,
		Used:       p.Used,
		UsedAt:     p.UsedAt,
	}
}

// FromLeaveApplication converts a leave application model into its API view
func FromLeaveApplication(app *models.LeaveApplication) LeaveApplicationResponse {
	if app == nil {
		return LeaveApplicationResponse{}
	}
	return LeaveApplicationResponse{
		ID:            app.ID,
		StudentID:     app.StudentID,
		LeaveType:     string(app.LeaveType),
		FromDate:      app.FromDate.Format(time.DateOnly),
		ToDate:        app.ToDate.Format(time.DateOnly),
		TotalDays:     app.TotalDays,
		Reason:        app.Reason,
		Status:        string(app.Status),
		AdminComments: app.AdminComments,
		ExitPass:      FromGatePass(app.ExitPass),
		EntryPass:     FromGatePass(app.EntryPass),
		CreatedAt:     app.CreatedAt,
	}
}
