package services

import (
	"context"
	"errors"
	"time"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// PassStore is the persistence surface the gate pass verifier needs
type PassStore interface {
	GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error)
	ConsumePass(ctx context.Context, leaveApplicationID int64, purpose gatepass.Purpose, usedAt time.Time) (*time.Time, error)
}

// GatePassService redeems scanned gate pass tokens. Verification checks both
// the self-contained signed token and the live application record, so a
// signature-valid token for a withdrawn or disputed application still fails.
type GatePassService struct {
	repo  PassStore
	codec *gatepass.Codec
	now   func() time.Time
}

// NewGatePassService creates a new GatePassService
func NewGatePassService(repo PassStore, codec *gatepass.Codec) *GatePassService {
	return &GatePassService{
		repo:  repo,
		codec: codec,
		now:   time.Now,
	}
}

// Verify redeems a scanned token. Checks run in a fixed order and short-circuit
// on the first failure, so gate staff always get the most specific reason:
// signature, purpose, time window, application existence, approval, then the
// single-use flag. The final consume is a conditional update; of two
// simultaneous scans of the same pass exactly one succeeds.
func (s *GatePassService) Verify(ctx context.Context, token string) (*dto.VerifyPassResponse, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, apperrors.ErrPassTokenInvalid
	}

	if !claims.Purpose.Valid() {
		return nil, apperrors.ErrPassWrongPurpose
	}

	now := s.now()
	if now.Before(claims.ValidFrom.Time) {
		return nil, apperrors.NewCustomError(apperrors.ErrPassNotYetValid, "").
			WithDetails(map[string]interface{}{"validFrom": claims.ValidFrom.Time})
	}
	if now.After(claims.ValidUntil.Time) {
		return nil, apperrors.NewCustomError(apperrors.ErrPassExpired, "").
			WithDetails(map[string]interface{}{"validUntil": claims.ValidUntil.Time})
	}

	app, err := s.repo.GetByID(ctx, claims.LeaveApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.LeaveApproved {
		return nil, apperrors.ErrLeaveNotApproved
	}

	pass := app.PassFor(claims.Purpose)
	if pass == nil {
		return nil, apperrors.ErrPassNotFound
	}
	// The stored record and the signed token are the dual source of truth; a
	// token that does not match the persisted code is stale or forged.
	if pass.Code != token {
		return nil, apperrors.ErrPassTokenInvalid
	}
	if pass.Used {
		return nil, alreadyUsed(pass.UsedAt)
	}

	prevUsedAt, err := s.repo.ConsumePass(ctx, claims.LeaveApplicationID, claims.Purpose, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrPassAlreadyUsed) {
			// Lost the race against a concurrent scan of the same pass
			return nil, alreadyUsed(prevUsedAt)
		}
		return nil, err
	}

	logger.Info().
		Int64("leaveApplicationID", claims.LeaveApplicationID).
		Int64("studentID", claims.StudentID).
		Str("purpose", string(claims.Purpose)).
		Msg("Gate pass verified")

	return &dto.VerifyPassResponse{
		LeaveApplicationID: claims.LeaveApplicationID,
		StudentID:          claims.StudentID,
		Purpose:            string(claims.Purpose),
		LeaveFrom:          claims.LeaveFrom,
		LeaveTo:            claims.LeaveTo,
		UsedAt:             now,
	}, nil
}

// MarkUsed is the administrative override: it consumes a pass identified by
// application and purpose without token verification. The same conditional
// update guards it, so the single-use guarantee holds here too.
func (s *GatePassService) MarkUsed(ctx context.Context, leaveApplicationID int64, purpose gatepass.Purpose) (*dto.VerifyPassResponse, error) {
	if !purpose.Valid() {
		return nil, apperrors.ErrPassWrongPurpose
	}

	app, err := s.repo.GetByID(ctx, leaveApplicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.LeaveApproved {
		return nil, apperrors.ErrLeaveNotApproved
	}

	now := s.now()
	prevUsedAt, err := s.repo.ConsumePass(ctx, leaveApplicationID, purpose, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrPassAlreadyUsed) {
			return nil, alreadyUsed(prevUsedAt)
		}
		return nil, err
	}

	logger.Info().
		Int64("leaveApplicationID", leaveApplicationID).
		Str("purpose", string(purpose)).
		Msg("Gate pass marked used by admin")

	return &dto.VerifyPassResponse{
		LeaveApplicationID: leaveApplicationID,
		StudentID:          app.StudentID,
		Purpose:            string(purpose),
		LeaveFrom:          app.FromDate.Format(time.DateOnly),
		LeaveTo:            app.ToDate.Format(time.DateOnly),
		UsedAt:             now,
	}, nil
}

func alreadyUsed(usedAt *time.Time) error {
	err := apperrors.NewCustomError(apperrors.ErrPassAlreadyUsed, "")
	if usedAt != nil {
		return err.WithDetails(map[string]interface{}{"usedAt": *usedAt})
	}
	return err
}
