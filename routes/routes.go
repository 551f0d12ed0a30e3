package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, shop, and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public routes (landing, contact, signup/login)
	SetupPublicRoutes(r, db)

	// Shop routes (customer-session protected)
	SetupShopRoutes(r, db)

	// Admin routes (admin-marker protected)
	SetupAdminRoutes(r, db)
}
