package service

import (
	"context"
	"log/slog"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/recommend"
)

// recommendationService implements RecommendationService around the
// retry/fallback orchestrator
type recommendationService struct {
	orchestrator *recommend.Orchestrator
	logger       *slog.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(orchestrator *recommend.Orchestrator, logger *slog.Logger) RecommendationService {
	return &recommendationService{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Generate validates the request and produces a recommendation. Generation
// itself never fails: exhausted retries downgrade to the deterministic
// fallback, so the only error path here is validation.
func (rs *recommendationService) Generate(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error) {
	params := req.Params()
	if err := models.ValidateMissionParams(params); err != nil {
		return nil, err
	}

	maxAttempts := 0
	if req.MaxRetries != nil {
		maxAttempts = *req.MaxRetries
	}

	rec := rs.orchestrator.Recommend(ctx, params, maxAttempts)
	rs.logger.Info("recommendation generated",
		"mission_type", params.MissionType,
		"source", rec.Metadata.GeneratedAs,
		"ships", len(params.SelectedShips))
	return rec, nil
}

// Status probes the simulated recommendation provider
func (rs *recommendationService) Status(ctx context.Context) models.ServiceStatus {
	return rs.orchestrator.ProbeStatus(ctx)
}
