package apperrors

import (
	"github.com/gin-gonic/gin"

	"askmind_backend/internal/logger"
)

// ErrorResponse is the envelope for every error reply.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// HandleError writes an AppError to the response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err, "path", c.Request.URL.Path)
	}

	c.JSON(err.HTTPCode, ErrorResponse{Success: false, Error: err})
}
