package models

import "time"

// Room represents a hostel room with a fixed number of beds
type Room struct {
	ID        int64     `db:"id"`
	Number    string    `db:"number"`
	Floor     int       `db:"floor"`
	Capacity  int       `db:"capacity"`
	Occupied  int       `db:"occupied"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HasFreeBed reports whether another student can be assigned to the room
func (r *Room) HasFreeBed() bool {
	return r.Occupied < r.Capacity
}
