package models

import "github.com/google/uuid"

// Category groups products on the menu.
type Category struct {
	BaseModel
	Title string `gorm:"not null" json:"title"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`

	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// Product is a single menu item belonging to one category.
type Product struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Image       string    `gorm:"not null" json:"image"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`
	Category    *Category `json:"category,omitempty"`
}
