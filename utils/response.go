package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the resource itself as the JSON body, the way the auction API does
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends an error body of the form {"detail": message}
func JSONError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"detail": message,
	})
}
