package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
)

// MenuController handles mess menu endpoints
type MenuController struct {
	menuService *services.MenuService
}

// NewMenuController creates a new MenuController
func NewMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// GetWeek handles retrieving the full weekly menu
// @Summary Get the weekly mess menu
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuEntryResponse}
// @Router /menu [get]
func (c *MenuController) GetWeek(ctx *gin.Context) {
	entries, err := c.menuService.GetWeek(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menuItems(entries)))
}

// GetDay handles retrieving one weekday's menu
// @Summary Get one day's mess menu
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (0=Sunday .. 6=Saturday)"
// @Success 200 {object} dto.APIResponse{data=[]dto.MenuEntryResponse}
// @Router /menu/{day} [get]
func (c *MenuController) GetDay(ctx *gin.Context) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid day parameter"))
		return
	}

	entries, err := c.menuService.GetDay(ctx, day)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menuItems(entries)))
}

// Upsert handles setting one meal slot
// @Summary Set a menu slot
// @Description Creates or replaces the items for one weekday and meal slot. Admin only.
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertMenuRequest true "Menu slot"
// @Success 200 {object} dto.APIResponse{data=dto.MenuEntryResponse}
// @Router /menu [put]
func (c *MenuController) Upsert(ctx *gin.Context) {
	var req dto.UpsertMenuRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entry, err := c.menuService.Upsert(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromMenuEntry(entry)))
}

// Delete handles removing one meal slot
// @Summary Delete a menu slot
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (0=Sunday .. 6=Saturday)"
// @Param meal path string true "Meal slot" Enums(BREAKFAST, LUNCH, SNACKS, DINNER)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /menu/{day}/{meal} [delete]
func (c *MenuController) Delete(ctx *gin.Context) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid day parameter"))
		return
	}

	if err := c.menuService.Delete(ctx, day, ctx.Param("meal")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Menu entry deleted"}))
}

func menuItems(entries []*models.MenuEntry) []dto.MenuEntryResponse {
	items := make([]dto.MenuEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.FromMenuEntry(entry))
	}
	return items
}
