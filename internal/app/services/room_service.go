package services

import (
	"context"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
)

// RoomService handles hostel room inventory
type RoomService struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new RoomService
func NewRoomService(roomRepo *repositories.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// Create adds a room to the inventory
func (s *RoomService) Create(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	room := &models.Room{
		Number:   req.Number,
		Floor:    req.Floor,
		Capacity: req.Capacity,
	}

	id, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	return s.roomRepo.GetByID(ctx, id)
}

// GetByID retrieves a room
func (s *RoomService) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// List retrieves all rooms
func (s *RoomService) List(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.List(ctx)
}

// Update changes a room's floor or capacity
func (s *RoomService) Update(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	return s.roomRepo.Update(ctx, id, nil, req.Floor, req.Capacity)
}
