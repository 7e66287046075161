package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/helpers"
)

// ComplaintController handles complaint endpoints
type ComplaintController struct {
	complaintService *services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// Create handles filing a complaint
// @Summary File a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint details"
// @Success 201 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Router /complaints [post]
func (c *ComplaintController) Create(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.Create(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromComplaint(complaint)))
}

// ListMine handles listing the caller's own complaints
// @Summary List my complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintListResponse}
// @Router /complaints/my [get]
func (c *ComplaintController) ListMine(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	complaints, total, err := c.complaintService.ListMine(ctx, middleware.GetUserID(ctx), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaintList(complaints, total, page, size)))
}

// List handles the admin complaint listing
// @Summary List complaints
// @Description Lists all complaints, optionally filtered by status. Admin only.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(OPEN, IN_PROGRESS, RESOLVED)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintListResponse}
// @Router /complaints [get]
func (c *ComplaintController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	status := models.ComplaintStatus(ctx.Query("status"))
	complaints, total, err := c.complaintService.List(ctx, status, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaintList(complaints, total, page, size)))
}

// UpdateStatus handles moving a complaint along its handling states
// @Summary Update a complaint's status
// @Description Moves a complaint between OPEN, IN_PROGRESS and RESOLVED. Resolving requires a resolution note. Admin only.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /complaints/{id}/status [patch]
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.UpdateStatus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromComplaint(complaint)))
}

func complaintList(complaints []*models.Complaint, total int64, page, size int) dto.ComplaintListResponse {
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, complaint := range complaints {
		items = append(items, dto.FromComplaint(complaint))
	}
	return dto.ComplaintListResponse{
		Complaints: items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
}
