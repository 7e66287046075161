package dto

import "github.com/hostelmate/hostelmate-backend/internal/app/models"

// CreateRoomRequest adds a room to the hostel inventory
type CreateRoomRequest struct {
	Number   string `json:"number" binding:"required"`
	Floor    int    `json:"floor" binding:"gte=0"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=8"`
}

// UpdateRoomRequest changes a room's mutable attributes
type UpdateRoomRequest struct {
	Floor    *int `json:"floor,omitempty" binding:"omitempty,gte=0"`
	Capacity *int `json:"capacity,omitempty" binding:"omitempty,min=1,max=8"`
}

// RoomResponse is the API view of a room
type RoomResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
	FreeBeds int    `json:"freeBeds"`
}

// RoomListResponse is a paginated list of rooms
type RoomListResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromRoom converts a room model into its API view
func FromRoom(r *models.Room) RoomResponse {
	if r == nil {
		return RoomResponse{}
	}
	return RoomResponse{
		ID:       r.ID,
		Number:   r.Number,
		Floor:    r.Floor,
		Capacity: r.Capacity,
		Occupied: r.Occupied,
		FreeBeds: r.Capacity - r.Occupied,
	}
}
