package models

import (
	"time"

	"github.com/google/uuid"
)

// ScrapePlatform identifies a supported social-media source
type ScrapePlatform string

const (
	PlatformInstagram ScrapePlatform = "instagram"
	PlatformTikTok    ScrapePlatform = "tiktok"
	PlatformX         ScrapePlatform = "x"
	PlatformYouTube   ScrapePlatform = "youtube"
)

// ScrapeJob tracks one request to the social-media scraper provider
type ScrapeJob struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID       uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	Platform      ScrapePlatform `json:"platform" gorm:"type:varchar(20);not null"`
	SourceURL     string         `json:"source_url" gorm:"size:2048;not null"`
	Status        JobStatus      `json:"status" gorm:"type:varchar(20);default:'queued';not null;index"`
	ProviderJobID string         `json:"provider_job_id" gorm:"size:255;index"`
	Result        string         `json:"result,omitempty" gorm:"type:jsonb"`
	FailureReason string         `json:"failure_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for the ScrapeJob model
func (ScrapeJob) TableName() string {
	return "scrape_jobs"
}
