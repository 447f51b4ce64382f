package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// memGenerationRepo is an in-memory repository.GenerationRepository
type memGenerationRepo struct {
	jobs map[uuid.UUID]*models.GenerationJob
}

func newMemGenerationRepo() *memGenerationRepo {
	return &memGenerationRepo{jobs: map[uuid.UUID]*models.GenerationJob{}}
}

func (m *memGenerationRepo) Create(ctx context.Context, job *models.GenerationJob) error {
	job.ID = uuid.New()
	m.jobs[job.ID] = job
	return nil
}

func (m *memGenerationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error) {
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return nil, apperrors.NotFound("generation job", apperrors.ErrNotFound)
}

func (m *memGenerationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.GenerationJob, error) {
	var out []*models.GenerationJob
	for _, job := range m.jobs {
		if job.OwnerID == ownerID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *memGenerationRepo) Update(ctx context.Context, job *models.GenerationJob) error {
	m.jobs[job.ID] = job
	return nil
}

func providersConfigFor(baseURL string) *config.ProvidersConfig {
	pc := config.ProviderConfig{BaseURL: baseURL, APIKey: "test-key", Timeout: 5 * time.Second}
	return &config.ProvidersConfig{Image: pc, Video: pc, Storyboard: pc, Scraper: pc}
}

func TestGenerationService_Submit(t *testing.T) {
	var gotAPIKey string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/jobs", r.URL.Path)
		gotAPIKey = r.Header.Get("X-API-Key")

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["job_id"])
		assert.Equal(t, "a red bicycle", req["prompt"])

		json.NewEncoder(w).Encode(map[string]string{
			"job_id": "prov-123",
			"status": "queued",
		})
	}))
	defer provider.Close()

	repo := newMemGenerationRepo()
	svc := NewGenerationService(repo, &mockBrandRepo{}, newMockStorage(), providersConfigFor(provider.URL))

	user := approvedUser()
	job, err := svc.Submit(context.Background(), user, SubmitGenerationRequest{
		Kind:   models.GenerationImage,
		Prompt: "a red bicycle",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, models.JobProcessing, job.Status)
	assert.Equal(t, "prov-123", job.ProviderJobID)
	assert.Equal(t, user.ID, job.OwnerID)
}

func TestGenerationService_Submit_ProviderDown(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer provider.Close()

	repo := newMemGenerationRepo()
	svc := NewGenerationService(repo, &mockBrandRepo{}, newMockStorage(), providersConfigFor(provider.URL))

	_, err := svc.Submit(context.Background(), approvedUser(), SubmitGenerationRequest{
		Kind:   models.GenerationVideo,
		Prompt: "a walkthrough",
	})
	require.Error(t, err)

	// The failed attempt is still recorded
	require.Len(t, repo.jobs, 1)
	for _, job := range repo.jobs {
		assert.Equal(t, models.JobFailed, job.Status)
		assert.NotEmpty(t, job.FailureReason)
	}
}

func TestGenerationService_Submit_Validation(t *testing.T) {
	svc := NewGenerationService(newMemGenerationRepo(), &mockBrandRepo{}, newMockStorage(), providersConfigFor("http://localhost:1"))

	_, err := svc.Submit(context.Background(), approvedUser(), SubmitGenerationRequest{
		Kind:   "hologram",
		Prompt: "x",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))

	_, err = svc.Submit(context.Background(), approvedUser(), SubmitGenerationRequest{
		Kind:   models.GenerationImage,
		Prompt: "   ",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestGenerationService_Get_RefreshSucceeded(t *testing.T) {
	output := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer output.Close()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/jobs/prov-123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"job_id":     "prov-123",
			"status":     "succeeded",
			"output_url": output.URL + "/asset.png",
		})
	}))
	defer provider.Close()

	repo := newMemGenerationRepo()
	store := newMockStorage()
	svc := NewGenerationService(repo, &mockBrandRepo{}, store, providersConfigFor(provider.URL))

	user := approvedUser()
	job := &models.GenerationJob{
		OwnerID:       user.ID,
		Kind:          models.GenerationImage,
		Prompt:        "a red bicycle",
		Status:        models.JobProcessing,
		ProviderJobID: "prov-123",
	}
	require.NoError(t, repo.Create(context.Background(), job))

	got, err := svc.Get(context.Background(), user, job.ID)
	require.NoError(t, err)

	assert.Equal(t, models.JobSucceeded, got.Status)
	assert.Equal(t, "generations/"+job.ID.String()+"/output.png", got.AssetKey)

	exists, err := store.Exists(context.Background(), got.AssetKey)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerationService_Get_PollFailureKeepsState(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer provider.Close()

	repo := newMemGenerationRepo()
	svc := NewGenerationService(repo, &mockBrandRepo{}, newMockStorage(), providersConfigFor(provider.URL))

	user := approvedUser()
	job := &models.GenerationJob{
		OwnerID:       user.ID,
		Kind:          models.GenerationImage,
		Status:        models.JobProcessing,
		ProviderJobID: "prov-123",
	}
	require.NoError(t, repo.Create(context.Background(), job))

	got, err := svc.Get(context.Background(), user, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobProcessing, got.Status)
}

func TestGenerationService_Get_OtherOwnerHidden(t *testing.T) {
	repo := newMemGenerationRepo()
	svc := NewGenerationService(repo, &mockBrandRepo{}, newMockStorage(), providersConfigFor("http://localhost:1"))

	job := &models.GenerationJob{
		OwnerID: uuid.New(),
		Kind:    models.GenerationImage,
		Status:  models.JobQueued,
	}
	require.NoError(t, repo.Create(context.Background(), job))

	_, err := svc.Get(context.Background(), approvedUser(), job.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
