package feedbackControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/models"
)

// POST /contact
// Form fields: name, email, message.
func SubmitFeedback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		message := c.PostForm("message")
		if name == "" || email == "" || message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
			return
		}

		entry := models.Feedback{Name: name, Email: email, Message: message}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": fmt.Sprintf("Thank you for your feedback, %s! We appreciate your message.", name),
		})
	}
}
