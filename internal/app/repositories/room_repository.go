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

// RoomRepository handles hostel room database operations
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new room and returns its ID
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) (int64, error) {
	sql, args, err := r.sb.Insert("rooms").
		Columns("number", "floor", "capacity", "occupied").
		Values(room.Number, room.Floor, room.Capacity, 0).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create room query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrRoomAlreadyExists
		}
		return 0, fmt.Errorf("error inserting room: %w", err)
	}

	logger.Info().Int64("roomID", id).Str("number", room.Number).Msg("Room created")
	return id, nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	sql, args, err := r.sb.Select(
		"id", "number", "floor", "capacity", "occupied", "created_at", "updated_at",
	).From("rooms").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	var room models.Room
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&room.ID, &room.Number, &room.Floor, &room.Capacity, &room.Occupied,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error querying room ID=%d: %w", id, err)
	}

	return &room, nil
}

// List retrieves all rooms ordered by floor and number
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select(
		"id", "number", "floor", "capacity", "occupied", "created_at", "updated_at",
	).From("rooms").OrderBy("floor ASC", "number ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(
			&room.ID, &room.Number, &room.Floor, &room.Capacity, &room.Occupied,
			&room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// Update applies partial updates to a room. Capacity can only grow or shrink
// down to the current occupancy; the guard keeps occupied <= capacity true.
func (r *RoomRepository) Update(ctx context.Context, id int64, number *string, floor, capacity *int) (*models.Room, error) {
	update := r.sb.Update("rooms").Set("updated_at", time.Now()).Where(squirrel.Eq{"id": id})
	if number != nil {
		update = update.Set("number", *number)
	}
	if floor != nil {
		update = update.Set("floor", *floor)
	}
	if capacity != nil {
		update = update.Set("capacity", *capacity)
		update = update.Where(squirrel.LtOrEq{"occupied": *capacity})
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update room query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrRoomAlreadyExists
		}
		return nil, fmt.Errorf("error updating room ID=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		room, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if capacity != nil && room.Occupied > *capacity {
			return nil, apperrors.NewConflictError("capacity cannot be lower than current occupancy")
		}
		return nil, apperrors.ErrRoomNotFound
	}

	return r.GetByID(ctx, id)
}
