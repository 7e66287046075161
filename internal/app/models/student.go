package models

import "time"

// AdmissionStatus tracks a student's hostel admission workflow
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "PENDING"
	AdmissionAdmitted AdmissionStatus = "ADMITTED"
	AdmissionRejected AdmissionStatus = "REJECTED"
)

// Student represents a student profile attached to a user account
type Student struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	RollNumber      string          `db:"roll_number"`
	Course          string          `db:"course"`
	GuardianName    string          `db:"guardian_name"`
	GuardianPhone   string          `db:"guardian_phone"`
	AdmissionStatus AdmissionStatus `db:"admission_status"`
	RoomID          *int64          `db:"room_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`

	// Relational fields
	User *User `db:"-"`
	Room *Room `db:"-"`
}
