package utils

import "github.com/gin-gonic/gin"

// Response helpers for the two error envelopes the API exposes.
// Plain CRUD and sale-processing failures use {"error": "..."}; the
// delete-style routes use {"success": false, "message": "..."}.

// RespondError sends the plain JSON error body with the given status code.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// RespondFailure sends the success-flag error body with the given status code.
func RespondFailure(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"success": false, "message": message})
}
