package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/danielagv/threadline/controllers/cart"
	orderControllers "github.com/danielagv/threadline/controllers/order"
	productControllers "github.com/danielagv/threadline/controllers/product"
	"github.com/danielagv/threadline/middleware"
)

// SetupShopRoutes registers the catalog, cart and checkout endpoints. All of
// them sit behind the customer session marker.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	shop := r.Group("/")
	shop.Use(middleware.RequireCustomer)
	{
		// ──────────────── Catalog ────────────────
		shop.GET("/shop", productControllers.GetProducts(db))
		shop.GET("/shop/popular", productControllers.GetPopularProducts(db))
		shop.GET("/shop/new-arrivals", productControllers.GetNewArrivals(db))
		shop.GET("/products/:id", productControllers.GetProductByID(db))

		// ──────────────── Cart ────────────────
		shop.GET("/cart", cartControllers.GetCart())
		shop.POST("/cart/add/:product_id", cartControllers.AddToCart(db))
		shop.POST("/cart/update/:product_id", cartControllers.UpdateCartAction())
		shop.POST("/cart/quantity/:product_id", cartControllers.UpdateQuantity())
		shop.POST("/cart/clear", cartControllers.ClearCart())

		// ──────────────── Checkout & Orders ────────────────
		shop.GET("/checkout", cartControllers.GetCheckout())
		shop.POST("/checkout", orderControllers.PlaceOrderHandler(db))
		shop.GET("/orders", orderControllers.GetMyOrdersHandler(db))
	}
}
