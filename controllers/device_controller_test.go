package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Without SNS credentials the push service never comes up and the controller
// is wired with nil. Device registration must answer cleanly instead of
// panicking.
func TestRegisterDeviceWithoutPushService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dc := NewDeviceController(nil)
	r.POST("/devices", func(c *gin.Context) {
		c.Set("userID", uint(1))
		dc.Register(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(`{"platform":"android","token":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}
