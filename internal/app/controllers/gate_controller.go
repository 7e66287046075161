package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/services"
	"github.com/hostelmate/hostelmate-backend/internal/middleware"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/gatepass"
)

// GateController handles gate pass redemption, called by gate-scanning
// equipment and staff rather than by students.
type GateController struct {
	gatePassService *services.GatePassService
}

// NewGateController creates a new GateController
func NewGateController(gatePassService *services.GatePassService) *GateController {
	return &GateController{gatePassService: gatePassService}
}

// Verify handles redeeming a scanned gate pass token
// @Summary Verify and consume a gate pass
// @Description Redeems a scanned token. Checks signature, purpose, time window, application state and the single-use flag in order, returning the most specific failure reason. A pass can be redeemed exactly once.
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyPassRequest true "Scanned token"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyPassResponse} "Pass consumed"
// @Failure 401 {object} dto.ErrorResponse "Invalid or tampered token"
// @Failure 409 {object} dto.ErrorResponse "Not yet valid, expired, not approved, or already used"
// @Router /gate/verify [post]
func (c *GateController) Verify(ctx *gin.Context) {
	var req dto.VerifyPassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.gatePassService.Verify(ctx, req.Token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// MarkUsed handles the administrative mark-as-used override
// @Summary Mark a gate pass used
// @Description Consumes a pass identified by application and purpose without token verification, for manual reconciliation. The single-use guarantee still holds.
// @Tags gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkPassUsedRequest true "Pass identity"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyPassResponse} "Pass consumed"
// @Failure 404 {object} dto.ErrorResponse "Application or pass not found"
// @Failure 409 {object} dto.ErrorResponse "Already used or not approved"
// @Router /gate/mark-used [post]
func (c *GateController) MarkUsed(ctx *gin.Context) {
	var req dto.MarkPassUsedRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.gatePassService.MarkUsed(ctx, req.LeaveApplicationID, gatepass.Purpose(req.Purpose))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
