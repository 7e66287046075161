package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// LeaveStore is the persistence surface the leave service needs
type LeaveStore interface {
	Create(ctx context.Context, app *models.LeaveApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error)
	ListByStudent(ctx context.Context, studentID int64, offset uint64, limit int) ([]*models.LeaveApplication, int64, error)
	List(ctx context.Context, status models.LeaveStatus, offset uint64, limit int) ([]*models.LeaveApplication, int64, error)
	DeletePending(ctx context.Context, id, studentID int64) error
	Approve(ctx context.Context, id int64, adminComments string, exit, entry *gatepass.Pass) error
	Reject(ctx context.Context, id int64, adminComments string) error
}

// StudentLookup resolves the student profile behind an authenticated user
type StudentLookup interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// LeaveService owns the leave application state machine. All status writes go
// through this service; approval and credential issuance are one atomic unit.
type LeaveService struct {
	leaveRepo   LeaveStore
	studentRepo StudentLookup
	codec       *gatepass.Codec
	now         func() time.Time
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(leaveRepo LeaveStore, studentRepo StudentLookup, codec *gatepass.Codec) *LeaveService {
	return &LeaveService{
		leaveRepo:   leaveRepo,
		studentRepo: studentRepo,
		codec:       codec,
		now:         time.Now,
	}
}

const maxReasonLength = 500

// Submit creates a PENDING leave application for the authenticated student.
// All field violations are collected and reported together.
func (s *LeaveService) Submit(ctx context.Context, userID int64, req *dto.CreateLeaveRequest) (*models.LeaveApplication, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student.AdmissionStatus != models.AdmissionAdmitted {
		return nil, apperrors.ErrStudentNotAdmitted
	}

	fields := map[string]interface{}{}

	leaveType := models.LeaveType(req.LeaveType)
	if !leaveType.Valid() {
		fields["leaveType"] = "must be one of HOME_VISIT, MEDICAL, EMERGENCY, PERSONAL, FESTIVAL, ACADEMIC, OTHER"
	}

	fromDate, fromErr := time.Parse(time.DateOnly, req.FromDate)
	if fromErr != nil {
		fields["fromDate"] = "must be a date in YYYY-MM-DD form"
	}
	toDate, toErr := time.Parse(time.DateOnly, req.ToDate)
	if toErr != nil {
		fields["toDate"] = "must be a date in YYYY-MM-DD form"
	}
	if fromErr == nil && toErr == nil {
		today := s.today()
		if fromDate.Before(today) {
			fields["fromDate"] = "must not be in the past"
		}
		if toDate.Before(fromDate) {
			fields["toDate"] = "must not be before fromDate"
		}
	}

	if req.Reason == "" {
		fields["reason"] = "must not be empty"
	} else if len(req.Reason) > maxReasonLength {
		fields["reason"] = fmt.Sprintf("must be at most %d characters", maxReasonLength)
	}

	if len(fields) > 0 {
		return nil, apperrors.NewBadRequestError("leave application validation failed").
			WithDetails(fields)
	}

	app := &models.LeaveApplication{
		StudentID: student.ID,
		LeaveType: leaveType,
		FromDate:  fromDate,
		ToDate:    toDate,
		TotalDays: int(toDate.Sub(fromDate).Hours()/24) + 1,
		Reason:    req.Reason,
		Status:    models.LeavePending,
	}

	id, err := s.leaveRepo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id
	app.CreatedAt = s.now()

	return app, nil
}

func (s *LeaveService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetByID retrieves an application. Students see only their own; admins see all.
func (s *LeaveService) GetByID(ctx context.Context, userID int64, isAdmin bool, id int64) (*models.LeaveApplication, error) {
	app, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if app.StudentID != student.ID {
			return nil, apperrors.ErrLeaveNotOwned
		}
	}
	return app, nil
}

// ListMine retrieves the authenticated student's applications
func (s *LeaveService) ListMine(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.LeaveApplication, int64, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.leaveRepo.ListByStudent(ctx, student.ID, offset, limit)
}

// List retrieves applications for admins, optionally filtered by status
func (s *LeaveService) List(ctx context.Context, status models.LeaveStatus, offset uint64, limit int) ([]*models.LeaveApplication, int64, error) {
	if status != "" && status != models.LeavePending && status != models.LeaveApproved && status != models.LeaveRejected {
		return nil, 0, apperrors.NewBadRequestError("unknown leave status filter")
	}
	return s.leaveRepo.List(ctx, status, offset, limit)
}

// Cancel withdraws the student's own still-PENDING application. A decided
// application cannot be withdrawn; that is a state conflict, not a no-op.
func (s *LeaveService) Cancel(ctx context.Context, userID, id int64) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.leaveRepo.DeletePending(ctx, id, student.ID)
}

// Approve transitions a PENDING application to APPROVED and issues both gate
// passes. Signing happens before the transaction commits, so a signing failure
// leaves the application PENDING with no passes.
func (s *LeaveService) Approve(ctx context.Context, id int64, adminComments string) (*models.LeaveApplication, error) {
	app, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.LeavePending {
		return nil, apperrors.ErrLeaveNotPending
	}

	exit, entry, err := s.codec.IssuePair(app.ID, app.StudentID, app.FromDate, app.ToDate)
	if err != nil {
		logger.Error().Err(err).Int64("leaveApplicationID", id).Msg("Gate pass issuance failed, approval aborted")
		return nil, fmt.Errorf("failed to issue gate passes: %w", err)
	}

	if err := s.leaveRepo.Approve(ctx, id, adminComments, exit, entry); err != nil {
		return nil, err
	}

	return s.leaveRepo.GetByID(ctx, id)
}

// Reject transitions a PENDING application to REJECTED. Comments are mandatory
// so the student always learns why.
func (s *LeaveService) Reject(ctx context.Context, id int64, adminComments string) (*models.LeaveApplication, error) {
	if adminComments == "" {
		return nil, apperrors.ErrAdminCommentsEmpty
	}

	app, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.LeavePending {
		return nil, apperrors.ErrLeaveNotPending
	}

	if err := s.leaveRepo.Reject(ctx, id, adminComments); err != nil {
		return nil, err
	}

	return s.leaveRepo.GetByID(ctx, id)
}

// GetPasses returns both credentials of the caller's approved application,
// with freshly rendered QR images.
func (s *LeaveService) GetPasses(ctx context.Context, userID, id int64) (*dto.LeavePassesResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	app, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.StudentID != student.ID {
		return nil, apperrors.ErrLeaveNotOwned
	}
	if app.Status != models.LeaveApproved {
		return nil, apperrors.ErrLeaveNotApproved
	}
	if app.ExitPass == nil || app.EntryPass == nil {
		return nil, apperrors.ErrPassNotFound
	}

	exit := dto.FromGatePass(app.ExitPass)
	entry := dto.FromGatePass(app.EntryPass)
	if exit.QRImage, err = gatepass.RenderDataURL(app.ExitPass.Code); err != nil {
		return nil, fmt.Errorf("failed to render exit pass QR image: %w", err)
	}
	if entry.QRImage, err = gatepass.RenderDataURL(app.EntryPass.Code); err != nil {
		return nil, fmt.Errorf("failed to render entry pass QR image: %w", err)
	}

	return &dto.LeavePassesResponse{
		LeaveApplicationID: app.ID,
		ExitPass:           *exit,
		EntryPass:          *entry,
	}, nil
}
