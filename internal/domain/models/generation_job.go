package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationKind identifies which AI provider a job targets
type GenerationKind string

const (
	GenerationImage      GenerationKind = "image"
	GenerationVideo      GenerationKind = "video"
	GenerationStoryboard GenerationKind = "storyboard"
)

// JobStatus is the lifecycle state of an asynchronous provider job
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobSucceeded  JobStatus = "succeeded"
	JobFailed     JobStatus = "failed"
)

// GenerationJob tracks one request to an external generation provider.
// ProviderJobID is the provider's handle used for status polling; AssetKey
// is set once the finished output has been persisted to media storage.
type GenerationJob struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID       uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`
	BrandID       *uuid.UUID     `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	ProductID     *uuid.UUID     `json:"product_id,omitempty" gorm:"type:uuid"`
	Kind          GenerationKind `json:"kind" gorm:"type:varchar(20);not null"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Status        JobStatus      `json:"status" gorm:"type:varchar(20);default:'queued';not null;index"`
	ProviderJobID string         `json:"provider_job_id" gorm:"size:255;index"`
	AssetKey      string         `json:"asset_key" gorm:"size:1024"`
	FailureReason string         `json:"failure_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for the GenerationJob model
func (GenerationJob) TableName() string {
	return "generation_jobs"
}

// IsTerminal reports whether the job has reached a final state
func (j *GenerationJob) IsTerminal() bool {
	return j.Status == JobSucceeded || j.Status == JobFailed
}
