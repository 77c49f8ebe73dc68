package middleware

import (
	"log"

	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("panic")
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
