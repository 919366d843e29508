package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogger_RequestLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	engine := gin.New()
	engine.Use(Logger())
	engine.GET("/books/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/books/42", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	line := buf.String()
	assert.Contains(t, line, `"path":"/books/42"`)
	assert.Contains(t, line, `"route":"/books/:id"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, "request completed")
}
