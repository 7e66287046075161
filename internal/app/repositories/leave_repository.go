package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/db"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// LeaveRepository handles leave application and gate pass database operations.
// status, used and used_at are only ever written here, through the guarded
// updates below.
type LeaveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLeaveRepository creates a new LeaveRepository
func NewLeaveRepository(db *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new PENDING leave application and returns its ID
func (r *LeaveRepository) Create(ctx context.Context, app *models.LeaveApplication) (int64, error) {
	sql, args, err := r.sb.Insert("leave_applications").
		Columns("student_id", "leave_type", "from_date", "to_date", "total_days", "reason", "status").
		Values(app.StudentID, app.LeaveType, app.FromDate, app.ToDate, app.TotalDays, app.Reason, models.LeavePending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create leave application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create leave application query")
		return 0, fmt.Errorf("error inserting leave application: %w", err)
	}

	logger.Info().Int64("leaveApplicationID", id).Int64("studentID", app.StudentID).Msg("Leave application submitted")
	return id, nil
}

// GetByID retrieves a leave application with its gate passes, if any
func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*models.LeaveApplication, error) {
	sql, args, err := r.sb.Select(
		"id", "student_id", "leave_type", "from_date", "to_date", "total_days",
		"reason", "status", "admin_comments", "created_at", "updated_at",
	).From("leave_applications").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get leave application query: %w", err)
	}

	var app models.LeaveApplication
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&app.ID, &app.StudentID, &app.LeaveType, &app.FromDate, &app.ToDate, &app.TotalDays,
		&app.Reason, &app.Status, &app.AdminComments, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("error querying leave application ID=%d: %w", id, err)
	}

	if err := r.loadPasses(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *LeaveRepository) loadPasses(ctx context.Context, app *models.LeaveApplication) error {
	sql, args, err := r.sb.Select(
		"leave_application_id", "purpose", "code", "valid_from", "valid_until", "used", "used_at",
	).From("gate_passes").Where(squirrel.Eq{"leave_application_id": app.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build get gate passes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to query gate passes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pass models.GatePass
		if err := rows.Scan(&pass.LeaveApplicationID, &pass.Purpose, &pass.Code,
			&pass.ValidFrom, &pass.ValidUntil, &pass.Used, &pass.UsedAt); err != nil {
			return fmt.Errorf("failed to scan gate pass row: %w", err)
		}
		switch pass.Purpose {
		case gatepass.PurposeExit:
			p := pass
			app.ExitPass = &p
		case gatepass.PurposeEntry:
			p := pass
			app.EntryPass = &p
		}
	}
	return rows.Err()
}

// ListByStudent retrieves one student's applications, newest first
func (r *LeaveRepository) ListByStudent(ctx context.Context, studentID int64, offset uint64, limit int) ([]*models.LeaveApplication, int64, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID}, offset, limit)
}

// List retrieves applications with an optional status filter, newest first
func (r *LeaveRepository) List(ctx context.Context, status models.LeaveStatus, offset uint64, limit int) ([]*models.LeaveApplication, int64, error) {
	where := squirrel.And{}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}
	return r.list(ctx, where, offset, limit)
}

func (r *LeaveRepository) list(ctx context.Context, where interface{}, offset uint64, limit int) ([]*models.LeaveApplication, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("leave_applications").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count leave applications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}
	if total == 0 {
		return []*models.LeaveApplication{}, 0, nil
	}

	sql, args, err := r.sb.Select(
		"id", "student_id", "leave_type", "from_date", "to_date", "total_days",
		"reason", "status", "admin_comments", "created_at", "updated_at",
	).From("leave_applications").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list leave applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.LeaveApplication
	for rows.Next() {
		var app models.LeaveApplication
		if err := rows.Scan(
			&app.ID, &app.StudentID, &app.LeaveType, &app.FromDate, &app.ToDate, &app.TotalDays,
			&app.Reason, &app.Status, &app.AdminComments, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave application row: %w", err)
		}
		apps = append(apps, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating leave application rows: %w", err)
	}

	return apps, total, nil
}

// DeletePending withdraws a still-undecided application owned by the student.
// The status guard makes withdrawal of a decided application a state conflict
// instead of a silent delete.
func (r *LeaveRepository) DeletePending(ctx context.Context, id, studentID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM leave_applications WHERE id = $1 AND student_id = $2 AND status = $3`,
		id, studentID, models.LeavePending)
	if err != nil {
		return fmt.Errorf("error deleting leave application ID=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish wrong owner / decided / missing for the caller
		app, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if app.StudentID != studentID {
			return apperrors.ErrLeaveNotOwned
		}
		return apperrors.ErrLeaveNotPending
	}

	logger.Info().Int64("leaveApplicationID", id).Msg("Leave application withdrawn")
	return nil
}

// Approve flips a PENDING application to APPROVED and persists both freshly
// minted gate passes in the same transaction. Either everything lands or the
// application stays PENDING; there is no half-approved state.
func (r *LeaveRepository) Approve(ctx context.Context, id int64, adminComments string, exit, entry *gatepass.Pass) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var comments interface{}
		if adminComments != "" {
			comments = adminComments
		}

		tag, err := tx.Exec(ctx,
			`UPDATE leave_applications SET status = $2, admin_comments = $3, updated_at = $4
			 WHERE id = $1 AND status = $5`,
			id, models.LeaveApproved, comments, time.Now(), models.LeavePending)
		if err != nil {
			return fmt.Errorf("error approving leave application ID=%d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			if _, err := r.GetByID(ctx, id); err != nil {
				return err
			}
			return apperrors.ErrLeaveNotPending
		}

		for _, pass := range []*gatepass.Pass{exit, entry} {
			if _, err := tx.Exec(ctx,
				`INSERT INTO gate_passes (leave_application_id, purpose, code, valid_from, valid_until, used)
				 VALUES ($1, $2, $3, $4, $5, FALSE)`,
				pass.LeaveApplicationID, pass.Purpose, pass.Code, pass.ValidFrom, pass.ValidUntil); err != nil {
				return fmt.Errorf("error inserting %s gate pass: %w", pass.Purpose, err)
			}
		}

		logger.Info().Int64("leaveApplicationID", id).Msg("Leave application approved, gate passes issued")
		return nil
	})
}

// Reject flips a PENDING application to REJECTED with the admin's comments
func (r *LeaveRepository) Reject(ctx context.Context, id int64, adminComments string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE leave_applications SET status = $2, admin_comments = $3, updated_at = $4
		 WHERE id = $1 AND status = $5`,
		id, models.LeaveRejected, adminComments, time.Now(), models.LeavePending)
	if err != nil {
		return fmt.Errorf("error rejecting leave application ID=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrLeaveNotPending
	}

	logger.Info().Int64("leaveApplicationID", id).Msg("Leave application rejected")
	return nil
}

// GetPass retrieves a single gate pass by application and purpose
func (r *LeaveRepository) GetPass(ctx context.Context, leaveApplicationID int64, purpose gatepass.Purpose) (*models.GatePass, error) {
	sql, args, err := r.sb.Select(
		"leave_application_id", "purpose", "code", "valid_from", "valid_until", "used", "used_at",
	).From("gate_passes").
		Where(squirrel.Eq{"leave_application_id": leaveApplicationID, "purpose": purpose}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gate pass query: %w", err)
	}

	var pass models.GatePass
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&pass.LeaveApplicationID, &pass.Purpose, &pass.Code,
		&pass.ValidFrom, &pass.ValidUntil, &pass.Used, &pass.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPassNotFound
		}
		return nil, fmt.Errorf("error querying gate pass: %w", err)
	}

	return &pass, nil
}

// ConsumePass flips the single-use flag with a compare-and-set update. The
// WHERE used = FALSE guard makes redemption linearizable: of N concurrent
// scans of the same pass exactly one update sticks. When the pass was already
// consumed the original used_at is returned so gate staff can audit the
// earlier redemption.
func (r *LeaveRepository) ConsumePass(ctx context.Context, leaveApplicationID int64, purpose gatepass.Purpose, usedAt time.Time) (*time.Time, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE gate_passes SET used = TRUE, used_at = $3
		 WHERE leave_application_id = $1 AND purpose = $2 AND used = FALSE`,
		leaveApplicationID, purpose, usedAt)
	if err != nil {
		return nil, fmt.Errorf("error consuming gate pass: %w", err)
	}

	if tag.RowsAffected() == 0 {
		pass, err := r.GetPass(ctx, leaveApplicationID, purpose)
		if err != nil {
			return nil, err
		}
		return pass.UsedAt, apperrors.ErrPassAlreadyUsed
	}

	logger.Info().
		Int64("leaveApplicationID", leaveApplicationID).
		Str("purpose", string(purpose)).
		Time("usedAt", usedAt).
		Msg("Gate pass consumed")
	return nil, nil
}
