package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/logger"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Payout().Errorf("panic: %v\n%s", r, debug.Stack())
				c.JSON(500, gin.H{"code": 500, "msg": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
