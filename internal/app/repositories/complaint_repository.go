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
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new OPEN complaint and returns its ID
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) (int64, error) {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_id", "category", "subject", "description", "status").
		Values(complaint.StudentID, complaint.Category, complaint.Subject, complaint.Description, models.ComplaintOpen).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting complaint: %w", err)
	}

	logger.Info().Int64("complaintID", id).Str("category", string(complaint.Category)).Msg("Complaint filed")
	return id, nil
}

// GetByID retrieves a complaint by ID
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(
		"id", "student_id", "category", "subject", "description", "status", "resolution", "created_at", "updated_at",
	).From("complaints").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	var c models.Complaint
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.StudentID, &c.Category, &c.Subject, &c.Description,
		&c.Status, &c.Resolution, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error querying complaint ID=%d: %w", id, err)
	}

	return &c, nil
}

// ListByStudent retrieves one student's complaints, newest first
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID int64, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID}, offset, limit)
}

// List retrieves complaints with optional status filter, newest first
func (r *ComplaintRepository) List(ctx context.Context, status models.ComplaintStatus, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	where := squirrel.And{}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}
	return r.list(ctx, where, offset, limit)
}

func (r *ComplaintRepository) list(ctx context.Context, where interface{}, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("complaints").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count complaints query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}
	if total == 0 {
		return []*models.Complaint{}, 0, nil
	}

	sql, args, err := r.sb.Select(
		"id", "student_id", "category", "subject", "description", "status", "resolution", "created_at", "updated_at",
	).From("complaints").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(
			&c.ID, &c.StudentID, &c.Category, &c.Subject, &c.Description,
			&c.Status, &c.Resolution, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, total, nil
}

// UpdateStatus moves a complaint through its handling states
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus, resolution *string) error {
	update := r.sb.Update("complaints").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})
	if resolution != nil {
		update = update.Set("resolution", *resolution)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update complaint query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating complaint ID=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	logger.Info().Int64("complaintID", id).Str("status", string(status)).Msg("Complaint status updated")
	return nil
}
