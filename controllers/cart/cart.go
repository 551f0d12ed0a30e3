package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/cart"
	"github.com/danielagv/threadline/models"
)

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := cart.FromSession(sessions.Default(c))
		c.JSON(http.StatusOK, gin.H{
			"items":  lines,
			"totals": lines.Totals(),
		})
	}
}

// POST /cart/add/:product_id
// Form field quantity is optional and defaults to 1. Snapshots the product's
// title/price/image into the new line; an existing line just accumulates.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		quantity := 1
		if q := c.PostForm("quantity"); q != "" {
			quantity, err = strconv.Atoi(q)
			if err != nil || quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		session := sessions.Default(c)
		lines := cart.FromSession(session).Add(cart.Line{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Cost,
			Image:     product.Image,
			Quantity:  quantity,
		})
		if err := cart.Save(session, lines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/update/:product_id
// Form field action is one of increase, decrease, remove. An unknown product
// id is a no-op; the visitor lands back on the cart either way.
func UpdateCartAction() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		action, ok := cart.ParseAction(c.PostForm("action"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}

		session := sessions.Default(c)
		lines := cart.FromSession(session)
		if action == cart.ActionRemove {
			lines = lines.Remove(uint(productID))
		} else {
			lines = lines.Adjust(uint(productID), action)
		}
		if err := cart.Save(session, lines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/quantity/:product_id
// AJAX path: sets an explicit quantity and answers with a structured
// success/failure body instead of a redirect.
func UpdateQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid product id"})
			return
		}
		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "invalid quantity"})
			return
		}

		session := sessions.Default(c)
		lines := cart.FromSession(session).SetQuantity(uint(productID), quantity)
		if err := cart.Save(session, lines); err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantity updated"})
	}
}

// POST /cart/clear
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Clear(sessions.Default(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// GET /checkout — totals preview before placing the order.
func GetCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := cart.FromSession(sessions.Default(c))
		c.JSON(http.StatusOK, gin.H{
			"items":  lines,
			"totals": lines.Totals(),
		})
	}
}
