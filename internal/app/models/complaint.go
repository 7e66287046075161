package models

import "time"

// ComplaintStatus is the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "OPEN"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

// ComplaintCategory is the area a complaint concerns
type ComplaintCategory string

const (
	ComplaintMaintenance ComplaintCategory = "MAINTENANCE"
	ComplaintMess        ComplaintCategory = "MESS"
	ComplaintCleanliness ComplaintCategory = "CLEANLINESS"
	ComplaintSecurity    ComplaintCategory = "SECURITY"
	ComplaintOther       ComplaintCategory = "OTHER"
)

// Valid reports whether c is a known complaint category
func (c ComplaintCategory) Valid() bool {
	switch c {
	case ComplaintMaintenance, ComplaintMess, ComplaintCleanliness, ComplaintSecurity, ComplaintOther:
		return true
	}
	return false
}

// Complaint is a student-filed issue handled by the hostel administration
type Complaint struct {
	ID          int64             `db:"id"`
	StudentID   int64             `db:"student_id"`
	Category    ComplaintCategory `db:"category"`
	Subject     string            `db:"subject"`
	Description string            `db:"description"`
	Status      ComplaintStatus   `db:"status"`
	Resolution  *string           `db:"resolution"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
