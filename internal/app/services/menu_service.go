package services

import (
	"context"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
)

// MenuService handles the weekly mess menu
type MenuService struct {
	menuRepo *repositories.MenuRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo *repositories.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// Upsert creates or replaces one meal slot
func (s *MenuService) Upsert(ctx context.Context, req *dto.UpsertMenuRequest) (*models.MenuEntry, error) {
	meal := models.MealType(req.Meal)
	if !meal.Valid() {
		return nil, apperrors.NewBadRequestError("unknown meal slot")
	}

	return s.menuRepo.Upsert(ctx, &models.MenuEntry{
		DayOfWeek: req.DayOfWeek,
		Meal:      meal,
		Items:     req.Items,
	})
}

// GetWeek retrieves the full weekly menu
func (s *MenuService) GetWeek(ctx context.Context) ([]*models.MenuEntry, error) {
	return s.menuRepo.ListWeek(ctx)
}

// GetDay retrieves one weekday's menu
func (s *MenuService) GetDay(ctx context.Context, dayOfWeek int) ([]*models.MenuEntry, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, apperrors.NewBadRequestError("dayOfWeek must be between 0 and 6")
	}
	return s.menuRepo.GetDay(ctx, dayOfWeek)
}

// Delete removes one meal slot
func (s *MenuService) Delete(ctx context.Context, dayOfWeek int, meal string) error {
	mealType := models.MealType(meal)
	if dayOfWeek < 0 || dayOfWeek > 6 || !mealType.Valid() {
		return apperrors.NewBadRequestError("unknown menu slot")
	}
	return s.menuRepo.Delete(ctx, dayOfWeek, mealType)
}
