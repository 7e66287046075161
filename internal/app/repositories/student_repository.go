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
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithUser inserts the account and the student profile in one
// transaction so a half-created registration never survives.
func (r *StudentRepository) CreateWithUser(ctx context.Context, user *models.User, student *models.Student) (int64, error) {
	var studentID int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userSQL, userArgs, err := r.sb.Insert("users").
			Columns("email", "password_hash", "first_name", "last_name", "role_type", "is_active").
			Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.RoleType, true).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}

		var userID int64
		if err := tx.QueryRow(ctx, userSQL, userArgs...).Scan(&userID); err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error inserting user: %w", err)
		}

		studentSQL, studentArgs, err := r.sb.Insert("students").
			Columns("user_id", "roll_number", "course", "guardian_name", "guardian_phone", "admission_status").
			Values(userID, student.RollNumber, student.Course, student.GuardianName, student.GuardianPhone, models.AdmissionPending).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		if err := tx.QueryRow(ctx, studentSQL, studentArgs...).Scan(&studentID); err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrRollNumberExists
			}
			return fmt.Errorf("error inserting student: %w", err)
		}

		user.ID = userID
		student.ID = studentID
		student.UserID = userID
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("studentID", studentID).Str("rollNumber", student.RollNumber).Msg("Student registered")
	return studentID, nil
}

func (r *StudentRepository) selectStudent() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.user_id", "s.roll_number", "s.course", "s.guardian_name", "s.guardian_phone",
		"s.admission_status", "s.room_id", "s.created_at", "s.updated_at",
		"u.email", "u.first_name", "u.last_name",
	).From("students s").Join("users u ON s.user_id = u.id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var u models.User
	err := row.Scan(
		&s.ID, &s.UserID, &s.RollNumber, &s.Course, &s.GuardianName, &s.GuardianPhone,
		&s.AdmissionStatus, &s.RoomID, &s.CreatedAt, &s.UpdatedAt,
		&u.Email, &u.FirstName, &u.LastName,
	)
	if err != nil {
		return nil, err
	}
	u.ID = s.UserID
	s.User = &u
	return &s, nil
}

// GetByID retrieves a student by ID, including account basics
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudent().Where(squirrel.Eq{"s.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student ID=%d: %w", id, err)
	}
	return student, nil
}

// GetByUserID retrieves the student profile owned by a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.selectStudent().Where(squirrel.Eq{"s.user_id": userID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student by user ID=%d: %w", userID, err)
	}
	return student, nil
}

// List retrieves students with optional admission-status filter, newest first
func (r *StudentRepository) List(ctx context.Context, status models.AdmissionStatus, offset uint64, limit int) ([]*models.Student, int64, error) {
	where := squirrel.And{}
	if status != "" {
		where = append(where, squirrel.Eq{"s.admission_status": status})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students s").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}
	if total == 0 {
		return []*models.Student{}, 0, nil
	}

	sql, args, err := r.selectStudent().
		Where(where).
		OrderBy("s.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// DecideAdmission applies an admission decision. Admitting assigns a bed: the
// room's occupancy is bumped with a guard on capacity inside the same
// transaction, so two concurrent admissions cannot oversubscribe a room.
func (r *StudentRepository) DecideAdmission(ctx context.Context, studentID int64, admit bool, roomID *int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		status := models.AdmissionRejected
		if admit {
			status = models.AdmissionAdmitted
		}

		if admit && roomID != nil {
			tag, err := tx.Exec(ctx,
				`UPDATE rooms SET occupied = occupied + 1, updated_at = $2 WHERE id = $1 AND occupied < capacity`,
				*roomID, time.Now())
			if err != nil {
				return fmt.Errorf("error reserving bed in room ID=%d: %w", *roomID, err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.ErrRoomFull
			}
		}

		update := r.sb.Update("students").
			Set("admission_status", status).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": studentID, "admission_status": models.AdmissionPending})
		if admit {
			update = update.Set("room_id", roomID)
		}

		sql, args, err := update.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build admission update query: %w", err)
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating admission for student ID=%d: %w", studentID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotPending
		}

		logger.Info().Int64("studentID", studentID).Bool("admit", admit).Msg("Admission decided")
		return nil
	})
}
