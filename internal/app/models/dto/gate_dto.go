package dto

import "time"

// VerifyPassRequest carries a raw scanned gate pass token
type VerifyPassRequest struct {
	Token string `json:"token" binding:"required"`
}

// MarkPassUsedRequest identifies a pass for the administrative mark-as-used
// override, without going through token verification.
type MarkPassUsedRequest struct {
	LeaveApplicationID int64  `json:"leaveApplicationId" binding:"required"`
	Purpose            string `json:"purpose" binding:"required,oneof=EXIT ENTRY"`
}

// VerifyPassResponse is the successful redemption result handed to gate staff
type VerifyPassResponse struct {
	LeaveApplicationID int64     `json:"leaveApplicationId"`
	StudentID          int64     `json:"studentId"`
	Purpose            string    `json:"purpose"`
	LeaveFrom          string    `json:"leaveFrom"`
	LeaveTo            string    `json:"leaveTo"`
	UsedAt             time.Time `json:"usedAt"`
}
