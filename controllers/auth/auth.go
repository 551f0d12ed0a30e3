package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/auth"
	"github.com/danielagv/threadline/models"
)

// One generic message for every login failure so responses never reveal
// whether a username exists.
const invalidCredentials = "Invalid username or password"

// POST /signup
// Form fields: username, email, password.
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")
		if username == "" || email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
			return
		}

		var existing models.User
		err := db.Where("username = ? OR email = ?", username, email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing users"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// POST /login
// Form fields: username, password. The fixed admin pair short-circuits to
// the admin marker; everything else authenticates against stored users.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		session := sessions.Default(c)
		if auth.AdminCredentialsMatch(username, password) {
			if err := auth.GrantAdmin(session); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
				return
			}
			c.Redirect(http.StatusSeeOther, "/admin/accounts")
			return
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}

		if err := auth.LoginCustomer(session, user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.LogoutCustomer(sessions.Default(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// POST /admin/login
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.AdminCredentialsMatch(c.PostForm("username"), c.PostForm("password")) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
			return
		}
		if err := auth.GrantAdmin(sessions.Default(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/accounts")
	}
}

// GET /admin/logout
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.RevokeAdmin(sessions.Default(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}
