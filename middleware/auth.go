package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/danielagv/threadline/auth"
)

// RequireCustomer gates shop pages behind the customer session marker.
// Anonymous visitors are redirected to the login page rather than erroring.
func RequireCustomer(c *gin.Context) {
	userID, ok := auth.CustomerID(sessions.Default(c))
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

// RequireAdmin gates the admin panel behind the admin session marker, which
// is independent of customer login state.
func RequireAdmin(c *gin.Context) {
	if !auth.IsAdmin(sessions.Default(c)) {
		c.Redirect(http.StatusSeeOther, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}
