package dto

import "github.com/hostelmate/hostelmate-backend/internal/app/models"

// StudentResponse is the API view of a student profile
type StudentResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	RollNumber      string  `json:"rollNumber"`
	Course          string  `json:"course"`
	GuardianName    string  `json:"guardianName"`
	GuardianPhone   string  `json:"guardianPhone"`
	AdmissionStatus string  `json:"admissionStatus"`
	RoomID          *int64  `json:"roomId,omitempty"`
	RoomNumber      *string `json:"roomNumber,omitempty"`
	FirstName       string  `json:"firstName,omitempty"`
	LastName        string  `json:"lastName,omitempty"`
	Email           string  `json:"email,omitempty"`
}

// StudentListResponse is a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// DecideAdmissionRequest is the admin's admission decision. A room must be
// named when admitting so the student gets a bed in the same step.
type DecideAdmissionRequest struct {
	Admit  bool   `json:"admit"`
	RoomID *int64 `json:"roomId,omitempty"`
}

// FromStudent converts a student model into its API view
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	resp := StudentResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		RollNumber:      s.RollNumber,
		Course:          s.Course,
		GuardianName:    s.GuardianName,
		GuardianPhone:   s.GuardianPhone,
		AdmissionStatus: string(s.AdmissionStatus),
		RoomID:          s.RoomID,
	}
	if s.User != nil {
		resp.FirstName = s.User.FirstName
		resp.LastName = s.User.LastName
		resp.Email = s.User.Email
	}
	if s.Room != nil {
		resp.RoomNumber = &s.Room.Number
	}
	return resp
}
