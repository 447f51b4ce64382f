package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// Recovery recovers from panics and returns a 500 response
func Recovery() gin.HandlerFunc {
	log := logger.Get().WithFields(logger.Component("http"))

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithContext(c.Request.Context()).Error("Panic recovered",
					logger.Any("panic", r),
					logger.Method(c.Request.Method),
					logger.Path(c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "internal_error",
					"message": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
