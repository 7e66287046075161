package services

import (
	"context"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
)

// StudentService handles admission decisions and student listings
type StudentService struct {
	studentRepo *repositories.StudentRepository
	roomRepo    *repositories.RoomRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, roomRepo *repositories.RoomRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		roomRepo:    roomRepo,
	}
}

// GetByID retrieves a student, resolving the assigned room if any
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachRoom(ctx, student)
	return student, nil
}

func (s *StudentService) attachRoom(ctx context.Context, student *models.Student) {
	if student.RoomID == nil {
		return
	}
	if room, err := s.roomRepo.GetByID(ctx, *student.RoomID); err == nil {
		student.Room = room
	}
}

// List retrieves students with optional admission-status filter
func (s *StudentService) List(ctx context.Context, status models.AdmissionStatus, offset uint64, limit int) ([]*models.Student, int64, error) {
	if status != "" && status != models.AdmissionPending && status != models.AdmissionAdmitted && status != models.AdmissionRejected {
		return nil, 0, apperrors.NewBadRequestError("unknown admission status filter")
	}
	return s.studentRepo.List(ctx, status, offset, limit)
}

// DecideAdmission admits or rejects a pending student. Admission requires a
// room with a free bed; the bed is reserved in the same transaction as the
// status change.
func (s *StudentService) DecideAdmission(ctx context.Context, studentID int64, admit bool, roomID *int64) (*models.Student, error) {
	if admit {
		if roomID == nil {
			return nil, apperrors.NewBadRequestError("roomId is required when admitting a student")
		}
		if _, err := s.roomRepo.GetByID(ctx, *roomID); err != nil {
			return nil, err
		}
	}

	if err := s.studentRepo.DecideAdmission(ctx, studentID, admit, roomID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, studentID)
}
