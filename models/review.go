package models

// Review is a seeded product review. UserName is free text, not a foreign
// key; there is no customer-facing write path for reviews.
type Review struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `json:"comment"`
	UserName  string `json:"user_name"`
	ProductID uint   `gorm:"index" json:"product_id"`
}
