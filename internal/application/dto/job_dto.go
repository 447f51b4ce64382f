package dto

import "github.com/google/uuid"

// SubmitGenerationRequest is the body of POST /generations
type SubmitGenerationRequest struct {
	Kind      string     `json:"kind" binding:"required,oneof=image video storyboard"`
	Prompt    string     `json:"prompt" binding:"required"`
	BrandID   *uuid.UUID `json:"brand_id"`
	ProductID *uuid.UUID `json:"product_id"`
}

// SubmitScrapeRequest is the body of POST /scrapes
type SubmitScrapeRequest struct {
	URL string `json:"url" binding:"required,url"`
}
