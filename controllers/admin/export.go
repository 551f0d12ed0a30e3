package adminController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/models"
)

// GET /admin/accounts/export
// Streams the registered accounts as an .xlsx download. The optional search
// param applies the same username filter as the accounts listing.
func ExportAccountsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")

		query := db.Model(&models.User{}).Order("id")
		if search != "" {
			query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Accounts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Username", "Email", "CreatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, u := range users {
			row := sheet.AddRow()
			row.AddCell().SetValue(u.ID)
			row.AddCell().SetValue(u.Username)
			row.AddCell().SetValue(u.Email)
			row.AddCell().SetValue(u.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=accounts.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// GET /admin/feedback/export
func ExportFeedbackToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedback []models.Feedback
		if err := db.Order("id").Find(&feedback).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Feedback")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Email", "Message"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, f := range feedback {
			row := sheet.AddRow()
			row.AddCell().SetValue(f.ID)
			row.AddCell().SetValue(f.Name)
			row.AddCell().SetValue(f.Email)
			row.AddCell().SetValue(f.Message)
		}

		c.Header("Content-Disposition", "attachment; filename=feedback.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
