package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"rockroutes/pkg/utils"
)

func TestTraceIDMiddleware(t *testing.T) {
	incoming := uuid.NewString()

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"reuses valid id", incoming, true},
		{"replaces garbage", "<script>", false},
		{"mints when absent", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var inHandler string
			r := gin.New()
			r.Use(TraceIDMiddleware())
			r.GET("/", func(c *gin.Context) {
				inHandler = c.GetString(utils.TraceIDKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(TraceIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(TraceIDHeader)
			assert.Equal(t, inHandler, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			if tc.reuse {
				assert.Equal(t, incoming, got)
			} else {
				assert.NotEqual(t, tc.header, got)
			}
		})
	}
}

func TestRecovery_OpaqueError(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("secret detail") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something broke!")
	assert.NotContains(t, w.Body.String(), "secret detail")
}
