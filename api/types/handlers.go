package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

// ParseIDParam extracts a non-negative catalog id from the URL
// Returns false and sends a 400 response if parsing fails
func ParseIDParam(c *gin.Context, paramName string) (int, bool) {
	value, err := strconv.Atoi(c.Param(paramName))
	if err != nil || value < 0 {
		SendAppError(c, apperrors.InvalidInput(paramName, "must be a non-negative integer"))
		return 0, false
	}
	return value, true
}

// SendAppError writes err using the status code mapped from its error code
func SendAppError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
		Error:   string(apperrors.GetCode(err)),
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		resp.Details = appErr.Details
	}
	c.JSON(apperrors.GetHTTPCode(err), resp)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
