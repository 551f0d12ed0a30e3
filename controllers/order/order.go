package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/cart"
	"github.com/danielagv/threadline/models"
)

// ErrEmptyCart rejects checkout of a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder materializes the cart into an order header plus one item row
// per line, all inside one transaction so a failure partway leaves nothing
// behind. Item rows copy name/price/quantity from the cart snapshot; they
// hold no live product reference. The caller clears the session cart only
// after this returns successfully.
func PlaceOrder(db *gorm.DB, userID uint, lines cart.Cart) (*models.Order, error) {
	if lines.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductName: l.Title,
			Price:       l.Price,
			Quantity:    l.Quantity,
		})
	}

	order := models.Order{
		OrderRef:   generateOrderRef(),
		UserID:     userID,
		Items:      items,
		TotalPrice: lines.Totals().GrandTotal,
		Status:     models.OrderStatusProcessing,
		PlacedAt:   time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /checkout
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		session := sessions.Default(c)
		lines := cart.FromSession(session)

		order, err := PlaceOrder(db, userID, lines)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// The order is committed; an empty cart is all that's left to show.
		if err := cart.Clear(session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order placed but cart could not be cleared"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
			"total":     order.TotalPrice,
			"status":    order.Status,
		})
	}
}

// GET /orders — the logged-in customer's order history, newest first.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal.(uint)).
			Preload("Items").
			Order("placed_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
