package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

// The public site's client script keys off a flat {success, error} envelope,
// so every failure response uses the same shape regardless of status code.

// RespondWithError sends a standardized JSON error response and stops the chain.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"success": false, "error": message})
	c.Abort()
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// IsValidEmail checks if a string is a valid email format.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}
