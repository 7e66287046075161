package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
)

// BindJSON binds the request body and reports all field violations in one
// response. Returns false after writing the error when binding fails.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var detail *dto.ErrorDetail
		if _, ok := err.(validator.ValidationErrors); ok {
			detail = dto.HandleValidationError(err)
		} else {
			detail = dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").
				WithDetails(err.Error())
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}
