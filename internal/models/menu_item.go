package models

import "time"

type MenuItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Ingredients string  `gorm:"size:255" json:"ingredients"`
	DietaryType string  `gorm:"size:50" json:"dietary_type"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
