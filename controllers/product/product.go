package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/models"
)

// ListFilters are the catalog query parameters. All provided filters are
// ANDed together; the category set is OR within itself. A zero MaxPrice
// means no price ceiling.
type ListFilters struct {
	Categories  []string
	MaxPrice    float64
	SearchText  string
	PopularOnly bool
	Limit       int
}

// ListProducts runs filters against the catalog, newest first.
func ListProducts(db *gorm.DB, f ListFilters) ([]models.Product, error) {
	query := db.Model(&models.Product{})

	if len(f.Categories) > 0 {
		query = query.Where("category IN ?", f.Categories)
	}
	if f.MaxPrice > 0 {
		query = query.Where("cost <= ?", f.MaxPrice)
	}
	if f.SearchText != "" {
		like := "%" + strings.ToLower(f.SearchText) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.PopularOnly {
		query = query.Where("is_popular = ?", true)
	}
	query = query.Order("id DESC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GET /shop
// Query params: category (repeatable), max_price, q
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := ListFilters{
			Categories: c.QueryArray("category"),
			SearchText: c.Query("q"),
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filters.MaxPrice = maxPrice
		}

		products, err := ListProducts(db, filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /shop/popular
func GetPopularProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := ListProducts(db, ListFilters{PopularOnly: true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /shop/new-arrivals
func GetNewArrivals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := ListProducts(db, ListFilters{Limit: 4})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/:id — single product with its seeded reviews.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Reviews").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// landing page tiles, static marketing content carried over from the site
type landingTile struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Link  string `json:"link"`
	Image string `json:"img,omitempty"`
}

// GET / — landing page data: static tiles plus trending and newest widgets.
func GetLanding(db *gorm.DB) gin.HandlerFunc {
	topCategories := []landingTile{
		{Title: "Cotton Collection", Desc: "comfortable and breathable", Link: "shop/new-arrivals", Image: "uniqloshirt.avif"},
		{Title: "Men's Fashion", Desc: "Classic and contemporary designs", Link: "shop?category=mens", Image: "mens.jpg"},
		{Title: "Women's Fashion", Desc: "Elegant and trendy pieces", Link: "shop?category=womens", Image: "womens.jpg"},
	}
	quickLinks := []landingTile{
		{Title: "Customer Service", Desc: "Get help with your orders", Link: "contact"},
		{Title: "Promotions", Desc: "Check out our latest deals", Link: "promotions"},
	}

	return func(c *gin.Context) {
		trending, err := ListProducts(db, ListFilters{PopularOnly: true, Limit: 4})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		newest, err := ListProducts(db, ListFilters{Limit: 4})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"top_categories": topCategories,
			"trending_now":   trending,
			"new_arrivals":   newest,
			"quick_links":    quickLinks,
		})
	}
}
