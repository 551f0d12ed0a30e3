package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/danielagv/threadline/controllers/admin"
	"github.com/danielagv/threadline/middleware"
)

// SetupAdminRoutes registers the admin panel endpoints behind the admin
// session marker.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin)
	{
		admin.GET("/accounts", adminController.GetAccounts(db))
		admin.POST("/accounts", adminController.GetAccounts(db)) // search form posts here
		admin.GET("/accounts/export", adminController.ExportAccountsToExcel(db))
		admin.POST("/accounts/:id/delete", adminController.DeleteAccount(db))
		admin.POST("/accounts/clear", adminController.ClearAccounts(db))

		admin.GET("/feedback", adminController.GetFeedback(db))
		admin.GET("/feedback/export", adminController.ExportFeedbackToExcel(db))
		admin.POST("/feedback/clear", adminController.ClearFeedback(db))
	}
}
