package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/recommend"
)

// stubProvider always succeeds with a fixed confidence
type stubProvider struct {
	generator  *recommend.Generator
	confidence int
	latency    time.Duration
	pingErr    error
}

func (p *stubProvider) Generate(ctx context.Context, params *models.MissionParams) (*recommend.ProviderResult, error) {
	return &recommend.ProviderResult{
		Recommendation: p.generator.Generate(params),
		Confidence:     p.confidence,
	}, nil
}

func (p *stubProvider) Ping(ctx context.Context) (time.Duration, error) {
	return p.latency, p.pingErr
}

func newRecommendationService(confidence int) RecommendationService {
	gen := recommend.NewGenerator(nil)
	provider := &stubProvider{generator: gen, confidence: confidence, latency: time.Second}
	orch := recommend.NewOrchestrator(provider, gen, recommend.DefaultConfig(), testLogger())
	return NewRecommendationService(orch, testLogger())
}

func validRecommendationRequest() *models.GenerateRecommendationRequest {
	return &models.GenerateRecommendationRequest{
		MissionType:     "Coastal Patrol",
		DurationDays:    7,
		ThreatLevel:     "Medium",
		SelectedShips:   []string{"KD Lekiu", "KD Jebat"},
		Weather:         "Clear",
		OperationalArea: "Malacca Strait",
	}
}

func TestRecommendationGenerate_Success(t *testing.T) {
	svc := newRecommendationService(85)

	rec, err := svc.Generate(context.Background(), validRecommendationRequest())
	require.NoError(t, err)

	assert.Equal(t, models.SourceAIService, rec.Metadata.GeneratedAs)
	assert.NotEmpty(t, rec.Primary)
}

func TestRecommendationGenerate_LowConfidenceFallsBack(t *testing.T) {
	svc := newRecommendationService(40)

	req := validRecommendationRequest()
	maxRetries := 1
	req.MaxRetries = &maxRetries

	rec, err := svc.Generate(context.Background(), req)
	require.NoError(t, err, "generation never fails, it downgrades")
	assert.Equal(t, models.SourceFallbackMock, rec.Metadata.GeneratedAs)
}

func TestRecommendationGenerate_ValidationErrors(t *testing.T) {
	svc := newRecommendationService(85)

	req := validRecommendationRequest()
	req.SelectedShips = nil
	_, err := svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrEmptyShips)

	req = validRecommendationRequest()
	req.DurationDays = 0
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)
}

func TestRecommendationStatus(t *testing.T) {
	svc := newRecommendationService(85)
	assert.Equal(t, models.StatusAvailable, svc.Status(context.Background()))
}
