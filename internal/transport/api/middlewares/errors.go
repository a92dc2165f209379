package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Errors рендерит первую ошибку из контекста в поле detail. Текст публичных ошибок отдается клиенту как есть,
// для остальных клиент видит только название статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// тело уже отрендерено хендлером.
		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		status := c.Writer.Status()
		detail := strings.ToLower(http.StatusText(status))
		if first := c.Errors[0]; first.IsType(gin.ErrorTypePublic) {
			detail = first.Error()
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, detail)
		} else {
			c.JSON(status, gin.H{"detail": detail})
		}
		c.Abort()
	}
}
