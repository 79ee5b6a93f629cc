package utils

import (
	apperrors "circuithouse-backend/errors"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONAppError maps a typed service error to its HTTP status and
// client-facing message.
func JSONAppError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"error":   apperrors.MessageOf(err),
		"code":    string(apperrors.KindOf(err)),
	})
}
