package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// MenuRepository handles mess menu database operations
type MenuRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert creates or replaces the menu entry for one weekday and meal slot
func (r *MenuRepository) Upsert(ctx context.Context, entry *models.MenuEntry) (*models.MenuEntry, error) {
	var saved models.MenuEntry
	err := r.db.QueryRow(ctx,
		`INSERT INTO menu_entries (day_of_week, meal, items, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (day_of_week, meal)
		 DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
		 RETURNING id, day_of_week, meal, items, updated_at`,
		entry.DayOfWeek, entry.Meal, entry.Items, time.Now()).
		Scan(&saved.ID, &saved.DayOfWeek, &saved.Meal, &saved.Items, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error upserting menu entry: %w", err)
	}

	logger.Info().Int("dayOfWeek", saved.DayOfWeek).Str("meal", string(saved.Meal)).Msg("Menu entry saved")
	return &saved, nil
}

// ListWeek retrieves the full weekly menu ordered by day and meal slot
func (r *MenuRepository) ListWeek(ctx context.Context) ([]*models.MenuEntry, error) {
	sql, args, err := r.sb.Select("id", "day_of_week", "meal", "items", "updated_at").
		From("menu_entries").
		OrderBy("day_of_week ASC",
			`CASE meal WHEN 'BREAKFAST' THEN 0 WHEN 'LUNCH' THEN 1 WHEN 'SNACKS' THEN 2 ELSE 3 END`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list menu query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.MenuEntry
	for rows.Next() {
		var entry models.MenuEntry
		if err := rows.Scan(&entry.ID, &entry.DayOfWeek, &entry.Meal, &entry.Items, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu entry row: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu entry rows: %w", err)
	}

	return entries, nil
}

// GetDay retrieves the menu entries for one weekday
func (r *MenuRepository) GetDay(ctx context.Context, dayOfWeek int) ([]*models.MenuEntry, error) {
	sql, args, err := r.sb.Select("id", "day_of_week", "meal", "items", "updated_at").
		From("menu_entries").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy(`CASE meal WHEN 'BREAKFAST' THEN 0 WHEN 'LUNCH' THEN 1 WHEN 'SNACKS' THEN 2 ELSE 3 END`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get day menu query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.MenuEntry
	for rows.Next() {
		var entry models.MenuEntry
		if err := rows.Scan(&entry.ID, &entry.DayOfWeek, &entry.Meal, &entry.Items, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu entry row: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu entry rows: %w", err)
	}

	return entries, nil
}

// Delete removes the menu entry for one weekday and meal slot
func (r *MenuRepository) Delete(ctx context.Context, dayOfWeek int, meal models.MealType) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM menu_entries WHERE day_of_week = $1 AND meal = $2`, dayOfWeek, meal)
	if err != nil {
		return fmt.Errorf("error deleting menu entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMenuNotFound
	}
	return nil
}
