package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/service"
)

func newRecommendationRouter(mock *service.MockRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRecommendationHandler(mock, testLogger())

	router := gin.New()
	router.POST("/recommendations/generate", handler.Generate)
	router.GET("/recommendations/status", handler.Status)
	return router
}

func validRecommendationBody() map[string]interface{} {
	return map[string]interface{}{
		"mission_type":     "Patrol",
		"duration_days":    14,
		"threat_level":     "Medium",
		"selected_ships":   []string{"KD Lekiu", "KD Jebat"},
		"weather":          "Clear",
		"operational_area": "South China Sea",
	}
}

func TestGenerateRecommendation(t *testing.T) {
	t.Run("returns recommendation", func(t *testing.T) {
		confidence := 85
		mock := &service.MockRecommendationService{
			GenerateFunc: func(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error) {
				assert.Equal(t, "Patrol", req.MissionType)
				assert.Len(t, req.SelectedShips, 2)
				return &models.AIRecommendation{
					MissionAnalysis: models.MissionAnalysis{ComplexityScore: 45, RiskLevel: "Medium"},
					Metadata: models.RecommendationMetadata{
						GeneratedAs: models.SourceAIService,
						GeneratedAt: time.Now().UTC(),
						Confidence:  &confidence,
					},
				}, nil
			},
		}

		w := performJSON(newRecommendationRouter(mock), "POST", "/recommendations/generate", validRecommendationBody())

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.AIRecommendation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.SourceAIService, resp.Metadata.GeneratedAs)
		assert.Equal(t, 45, resp.MissionAnalysis.ComplexityScore)
	})

	t.Run("rejects empty ship list", func(t *testing.T) {
		body := validRecommendationBody()
		body["selected_ships"] = []string{}

		w := performJSON(newRecommendationRouter(&service.MockRecommendationService{}), "POST", "/recommendations/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown threat level", func(t *testing.T) {
		body := validRecommendationBody()
		body["threat_level"] = "Extreme"

		w := performJSON(newRecommendationRouter(&service.MockRecommendationService{}), "POST", "/recommendations/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps service validation error to 400", func(t *testing.T) {
		mock := &service.MockRecommendationService{
			GenerateFunc: func(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error) {
				return nil, models.ErrInvalidDuration
			},
		}

		w := performJSON(newRecommendationRouter(mock), "POST", "/recommendations/generate", validRecommendationBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_failed", resp.Error)
	})
}

func TestRecommendationStatus(t *testing.T) {
	mock := &service.MockRecommendationService{
		StatusFunc: func(ctx context.Context) models.ServiceStatus {
			return models.StatusDegraded
		},
	}

	w := performJSON(newRecommendationRouter(mock), "GET", "/recommendations/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	assert.NotEmpty(t, resp["checked_at"])
}
