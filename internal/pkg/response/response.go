// Package response writes the JSON envelope shared by every endpoint:
// {"success": true, "data": ...} on success and
// {"success": false, "error": {"code", "message"}} on failure, with an
// optional "details" field for validation errors. Error codes are
// machine-readable strings; clients branch on the code, the message is
// for humans.
package response

import "github.com/gin-gonic/gin"

// Success writes data inside the success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a coded error without details.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails writes a coded error carrying a details payload,
// typically per-field validation messages.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
