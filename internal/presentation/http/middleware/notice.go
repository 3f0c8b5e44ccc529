package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
)

// NoticeResetMiddleware clears once-per-request warnings before each request.
func NoticeResetMiddleware(notices *service.NoticeSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		notices.Reset()
		c.Next()
	}
}
