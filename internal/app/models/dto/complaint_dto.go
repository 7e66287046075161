package dto

import (
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
)

// CreateComplaintRequest files a new complaint
type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required,oneof=MAINTENANCE MESS CLEANLINESS SECURITY OTHER"`
	Subject     string `json:"subject" binding:"required,max=120"`
	Description string `json:"description" binding:"required,max=1000"`
}

// UpdateComplaintStatusRequest moves a complaint along its handling states
type UpdateComplaintStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
	Resolution string `json:"resolution,omitempty" binding:"max=1000"`
}

// ComplaintResponse is the API view of a complaint
type ComplaintResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Resolution  *string   `json:"resolution,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ComplaintListResponse is a paginated list of complaints
type ComplaintListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Pagination PaginationInfo      `json:"pagination"`
}

// FromComplaint converts a complaint model into its API view
func FromComplaint(c *models.Complaint) ComplaintResponse {
	if c == nil {
		return ComplaintResponse{}
	}
	return ComplaintResponse{
		ID:          c.ID,
		StudentID:   c.StudentID,
		Category:    string(c.Category),
		Subject:     c.Subject,
		Description: c.Description,
		Status:      string(c.Status),
		Resolution:  c.Resolution,
		CreatedAt:   c.CreatedAt,
	}
}
