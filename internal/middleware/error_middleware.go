package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto the standard error envelope.
// Detail maps attached via apperrors.CustomError (field violations, the
// original usedAt of a replayed pass) are surfaced verbatim.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if details := apperrors.DetailsOf(err); details != nil {
		detail = detail.WithDetails(details)
	}
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	// Authentication / authorization
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied), errors.Is(err, apperrors.ErrLeaveNotOwned):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")

	// Gate pass verification, most specific reasons first
	case errors.Is(err, apperrors.ErrPassTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodePassInvalid, "Invalid or tampered gate pass token")
	case errors.Is(err, apperrors.ErrPassWrongPurpose):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodePassWrongPurpose, "Wrong gate pass type")
	case errors.Is(err, apperrors.ErrPassNotYetValid):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodePassNotYetValid, "Gate pass is not yet valid")
	case errors.Is(err, apperrors.ErrPassExpired):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodePassExpired, "Gate pass has expired")
	case errors.Is(err, apperrors.ErrPassAlreadyUsed):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodePassAlreadyUsed, "Gate pass has already been used")
	case errors.Is(err, apperrors.ErrPassNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Gate pass not found")

	// Leave application state machine
	case errors.Is(err, apperrors.ErrLeaveNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Leave application not found")
	case errors.Is(err, apperrors.ErrLeaveNotPending):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeLeaveNotPending, "Leave application has already been decided")
	case errors.Is(err, apperrors.ErrLeaveNotApproved):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeLeaveNotApproved, "Leave application is not approved")
	case errors.Is(err, apperrors.ErrAdminCommentsEmpty):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Admin comments are required when rejecting")

	// Students and rooms
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrStudentNotPending):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeStateConflict, "Admission has already been decided")
	case errors.Is(err, apperrors.ErrStudentNotAdmitted):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Student is not admitted")
	case errors.Is(err, apperrors.ErrRoomNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Room not found")
	case errors.Is(err, apperrors.ErrRoomFull):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeStateConflict, "Room has no free beds")
	case errors.Is(err, apperrors.ErrRoomAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Room with this number already exists")

	// Registration conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrRollNumberExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Roll number already exists")

	// Remaining resources
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrComplaintNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrMenuNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeStateConflict, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
