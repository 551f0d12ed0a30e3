package models

// Feedback is a contact-form submission. Append-only; the admin panel can
// list and bulk-delete them.
type Feedback struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}
