package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/danielagv/threadline/controllers/auth"
	feedbackControllers "github.com/danielagv/threadline/controllers/feedback"
	productControllers "github.com/danielagv/threadline/controllers/product"
)

// SetupPublicRoutes registers the endpoints that need no session marker.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productControllers.GetLanding(db))
	r.POST("/contact", feedbackControllers.SubmitFeedback(db))

	r.POST("/signup", authControllers.Signup(db))
	r.POST("/login", authControllers.Login(db))
	r.GET("/logout", authControllers.Logout())

	r.POST("/admin/login", authControllers.AdminLogin())
	r.GET("/admin/logout", authControllers.AdminLogout())
}
