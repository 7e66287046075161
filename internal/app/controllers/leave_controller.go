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
	"github.com/hostelmate/hostelmate-backend/internal/pkg/helpers"
)

// LeaveController handles leave application endpoints
type LeaveController struct {
	leaveService *services.LeaveService
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService *services.LeaveService) *LeaveController {
	return &LeaveController{leaveService: leaveService}
}

// Submit handles creating a new leave application
// @Summary Submit a leave application
// @Description Creates a PENDING leave application for the authenticated student. Dates are inclusive calendar days.
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLeaveRequest true "Leave application details"
// @Success 201 {object} dto.APIResponse{data=dto.LeaveApplicationResponse} "Leave application created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Student not admitted"
// @Router /leaves [post]
func (c *LeaveController) Submit(ctx *gin.Context) {
	var req dto.CreateLeaveRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.leaveService.Submit(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromLeaveApplication(app)))
}

// ListMine handles listing the authenticated student's applications
// @Summary List my leave applications
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.LeaveListResponse}
// @Router /leaves/my [get]
func (c *LeaveController) ListMine(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	apps, total, err := c.leaveService.ListMine(ctx, middleware.GetUserID(ctx), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listResponse(apps, total, page, size)))
}

// List handles the admin listing of all applications
// @Summary List leave applications
// @Description Lists all leave applications, optionally filtered by status. Admin only.
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.LeaveListResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /leaves [get]
func (c *LeaveController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	status := models.LeaveStatus(ctx.Query("status"))
	apps, total, err := c.leaveService.List(ctx, status, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listResponse(apps, total, page, size)))
}

// GetByID handles retrieving one application
// @Summary Get a leave application
// @Description Retrieves one application. Students can only access their own.
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveApplicationResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /leaves/{id} [get]
func (c *LeaveController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	app, err := c.leaveService.GetByID(ctx, middleware.GetUserID(ctx), middleware.IsAdmin(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromLeaveApplication(app)))
}

// Cancel handles withdrawing a still-pending application
// @Summary Withdraw a pending leave application
// @Description Removes the caller's own PENDING application. Decided applications cannot be withdrawn.
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Already decided"
// @Router /leaves/{id} [delete]
func (c *LeaveController) Cancel(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.leaveService.Cancel(ctx, middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Leave application withdrawn"}))
}

// Approve handles the admin approval decision
// @Summary Approve a leave application
// @Description Transitions a PENDING application to APPROVED and issues both gate passes atomically. Admin only.
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Param request body dto.DecideLeaveRequest false "Optional admin comments"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveApplicationResponse} "Approved with passes"
// @Failure 409 {object} dto.ErrorResponse "Already decided"
// @Router /leaves/{id}/approve [post]
func (c *LeaveController) Approve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.leaveService.Approve(ctx, id, req.AdminComments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromLeaveApplication(app)))
}

// Reject handles the admin rejection decision
// @Summary Reject a leave application
// @Description Transitions a PENDING application to REJECTED. Admin comments are mandatory.
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Param request body dto.DecideLeaveRequest true "Admin comments (required)"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Comments missing"
// @Failure 409 {object} dto.ErrorResponse "Already decided"
// @Router /leaves/{id}/reject [post]
func (c *LeaveController) Reject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.DecideLeaveRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.leaveService.Reject(ctx, id, req.AdminComments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromLeaveApplication(app)))
}

// GetPasses handles retrieving the caller's gate passes with QR images
// @Summary Get my gate passes
// @Description Returns both credentials of the caller's approved application, each with a rendered QR image.
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave application ID"
// @Success 200 {object} dto.APIResponse{data=dto.LeavePassesResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 409 {object} dto.ErrorResponse "Not approved"
// @Router /leaves/{id}/passes [get]
func (c *LeaveController) GetPasses(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	passes, err := c.leaveService.GetPasses(ctx, middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(passes))
}

func listResponse(apps []*models.LeaveApplication, total int64, page, size int) dto.LeaveListResponse {
	items := make([]dto.LeaveApplicationResponse, 0, len(apps))
	for _, app := range apps {
		items = append(items, dto.FromLeaveApplication(app))
	}
	return dto.LeaveListResponse{
		Applications: items,
		Pagination:   helpers.NewPaginationInfo(total, page, size),
	}
}

// pathID parses the :id path parameter, writing a 400 on failure
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid id parameter"))
		return 0, false
	}
	return id, true
}
