package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedCatalog inserts the starter catalog and its reviews when the product
// table is empty. Safe to call on every startup.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []Product{
		{Title: "Casual T-Shirt", Cost: 100, Image: "tshirt1.png", Category: "T-shirts", Description: "Everyday cotton tee with a relaxed fit.", IsPopular: true},
		{Title: "Long sleeves shirt", Cost: 150, Image: "shirt1.png", Category: "Shirts", Description: "Broadcloth long sleeve for cooler days.", IsPopular: false},
		{Title: "Graphic T-shirt", Cost: 120, Image: "tshirt2.png", Category: "T-shirts", Description: "Printed graphic tee, pre-shrunk.", IsPopular: true},
		{Title: "Buttoned up shirt", Cost: 210, Image: "shirt2.png", Category: "Shirts", Description: "Classic button-up, office ready.", IsPopular: false},
		{Title: "Classic hoodie", Cost: 180, Image: "hoodie1.png", Category: "Hoodie", Description: "Heavyweight fleece hoodie.", IsPopular: true},
		{Title: "Simple shorts", Cost: 250, Image: "shorts1.png", Category: "Shorts", Description: "Lightweight shorts with deep pockets.", IsPopular: false},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	reviews := []Review{
		{Rating: 5, Comment: "Fits perfectly, great fabric.", UserName: "maya", ProductID: products[0].ID},
		{Rating: 4, Comment: "Color faded slightly after a few washes.", UserName: "jon", ProductID: products[0].ID},
		{Rating: 5, Comment: "My go-to hoodie all winter.", UserName: "priya", ProductID: products[4].ID},
		{Rating: 3, Comment: "Runs a size small.", UserName: "alex", ProductID: products[3].ID},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded catalog with %d products and %d reviews", len(products), len(reviews))
	return nil
}
