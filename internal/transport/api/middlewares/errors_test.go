package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		handler  gin.HandlerFunc
		accept   string
		wantCode int
		wantBody string
	}{
		{
			name: "public error text",
			handler: func(c *gin.Context) {
				_ = c.AbortWithError(http.StatusNotFound, errors.New("item with id 1 was not found")).
					SetType(gin.ErrorTypePublic)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"item with id 1 was not found"}`,
		},
		{
			name: "private error hidden",
			handler: func(c *gin.Context) {
				_ = c.AbortWithError(http.StatusInternalServerError, errors.New("dial tcp: refused")).
					SetType(gin.ErrorTypePrivate)
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"internal server error"}`,
		},
		{
			name: "plain text",
			handler: func(c *gin.Context) {
				_ = c.AbortWithError(http.StatusForbidden, errors.New("nope")).SetType(gin.ErrorTypePublic)
			},
			accept:   "text/plain",
			wantCode: http.StatusForbidden,
			wantBody: "nope",
		},
		{
			name: "rendered body kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("logged only"))
				c.JSON(http.StatusOK, gin.H{"ok": true})
			},
			wantCode: http.StatusOK,
			wantBody: `{"ok":true}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Errors())
			r.GET("/", tc.handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				req.Header.Set("Accept", tc.accept)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}
