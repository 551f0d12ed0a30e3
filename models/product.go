package models

// Product is a catalog entry. The catalog is read-only at runtime; rows are
// seeded once at startup when the table is empty.
type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Cost        float64  `gorm:"not null" json:"cost"`
	Image       string   `gorm:"not null" json:"image"`
	Category    string   `gorm:"index;not null" json:"category"`
	Description string   `json:"description"`
	IsPopular   bool     `json:"is_popular"`
	Reviews     []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
