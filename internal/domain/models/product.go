package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product belonging to a brand
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BrandID     uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:255"`
	Price       string    `json:"price" gorm:"size:64"`
	ImageKey    string    `json:"image_key" gorm:"size:1024"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
