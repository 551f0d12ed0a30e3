package adminController

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/models"
)

// GET /admin/accounts
// Optional search param filters usernames by case-insensitive substring.
func GetAccounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.DefaultQuery("search", c.PostForm("search"))

		query := db.Model(&models.User{}).Order("id")
		if search != "" {
			query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "search": search})
	}
}

// POST /admin/accounts/:id/delete
func DeleteAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.User{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/accounts")
	}
}

// POST /admin/accounts/clear
func ClearAccounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear users"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/accounts")
	}
}

// GET /admin/feedback
func GetFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedback []models.Feedback
		if err := db.Order("id").Find(&feedback).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": feedback})
	}
}

// POST /admin/feedback/clear
func ClearFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("1 = 1").Delete(&models.Feedback{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear feedback"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/feedback")
	}
}
