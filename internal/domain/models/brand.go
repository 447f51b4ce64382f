package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand represents a brand in the content catalog, owned by the user
// who created it.
type Brand struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_brand_owner_name"`
	Name        string    `json:"name" gorm:"not null;size:255;uniqueIndex:idx_brand_owner_name"`
	Description string    `json:"description" gorm:"type:text"`
	Industry    string    `json:"industry" gorm:"size:255"`
	ToneOfVoice string    `json:"tone_of_voice" gorm:"size:255"`
	LogoKey     string    `json:"logo_key" gorm:"size:1024"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Products []Product `json:"products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}
