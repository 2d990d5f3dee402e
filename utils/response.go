// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a JSON error body with the given status
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithCodedError additionally carries a machine-readable code so
// clients can tell conflicts apart from validation failures
func RespondWithCodedError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}
