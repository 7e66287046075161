package services

import (
	"context"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
)

// ComplaintService handles student complaints
type ComplaintService struct {
	complaintRepo *repositories.ComplaintRepository
	studentRepo   *repositories.StudentRepository
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo *repositories.ComplaintRepository, studentRepo *repositories.StudentRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		studentRepo:   studentRepo,
	}
}

// Create files a complaint on behalf of the authenticated student
func (s *ComplaintService) Create(ctx context.Context, userID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		StudentID:   student.ID,
		Category:    models.ComplaintCategory(req.Category),
		Subject:     req.Subject,
		Description: req.Description,
		Status:      models.ComplaintOpen,
	}
	if !complaint.Category.Valid() {
		return nil, apperrors.NewBadRequestError("unknown complaint category")
	}

	id, err := s.complaintRepo.Create(ctx, complaint)
	if err != nil {
		return nil, err
	}

	return s.complaintRepo.GetByID(ctx, id)
}

// ListMine retrieves the authenticated student's complaints
func (s *ComplaintService) ListMine(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.complaintRepo.ListByStudent(ctx, student.ID, offset, limit)
}

// List retrieves complaints for admins, optionally filtered by status
func (s *ComplaintService) List(ctx context.Context, status models.ComplaintStatus, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	if status != "" && status != models.ComplaintOpen && status != models.ComplaintInProgress && status != models.ComplaintResolved {
		return nil, 0, apperrors.NewBadRequestError("unknown complaint status filter")
	}
	return s.complaintRepo.List(ctx, status, offset, limit)
}

// UpdateStatus moves a complaint along its handling states. Resolving requires
// a resolution note.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	status := models.ComplaintStatus(req.Status)

	var resolution *string
	if req.Resolution != "" {
		resolution = &req.Resolution
	}
	if status == models.ComplaintResolved && resolution == nil {
		return nil, apperrors.NewBadRequestError("resolution is required when resolving a complaint")
	}

	if err := s.complaintRepo.UpdateStatus(ctx, id, status, resolution); err != nil {
		return nil, err
	}

	return s.complaintRepo.GetByID(ctx, id)
}
