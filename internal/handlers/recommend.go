package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/service"
)

// RecommendationHandler handles mission recommendation HTTP requests
type RecommendationHandler struct {
	recommendationService service.RecommendationService
	logger                *slog.Logger
	validator             *validator.Validate
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService service.RecommendationService, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		logger:                logger,
		validator:             validator.New(),
	}
}

// Generate handles POST /recommendations/generate
func (h *RecommendationHandler) Generate(c *gin.Context) {
	var req models.GenerateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	rec, err := h.recommendationService.Generate(c.Request.Context(), &req)
	if err != nil {
		// The orchestrator never fails past validation.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Status handles GET /recommendations/status
func (h *RecommendationHandler) Status(c *gin.Context) {
	status := h.recommendationService.Status(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"checked_at": time.Now().UTC().Format(time.RFC3339),
	})
}
