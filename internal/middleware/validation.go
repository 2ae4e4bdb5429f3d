package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/okan/hostelhub/internal/app/models/dto"
)

var validate = validator.New()

// ValidateStruct runs the validator on an already-bound value. Gin's
// binding tags cover most request validation; this is for values built
// outside ShouldBindJSON.
func ValidateStruct(obj interface{}) *dto.ErrorDetail {
	if err := validate.Struct(obj); err != nil {
		return dto.HandleValidationError(err)
	}
	return nil
}

// BindJSON binds and validates a JSON body, writing the standard error
// response on failure. Returns false when the request was rejected.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// BindQuery binds query parameters, writing the standard error response
// on failure. Returns false when the request was rejected.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
