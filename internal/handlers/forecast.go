package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/repository"
	"github.com/tldm-bits/ordnance-service/internal/service"
)

// ForecastHandler handles readiness forecast HTTP requests
type ForecastHandler struct {
	forecastService service.ForecastService
	logger          *slog.Logger
	validator       *validator.Validate
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService service.ForecastService, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		logger:          logger,
		validator:       validator.New(),
	}
}

// Generate handles POST /forecasts/generate
func (h *ForecastHandler) Generate(c *gin.Context) {
	var req models.GenerateForecastRequest
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

	result, err := h.forecastService.GenerateForecast(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to generate forecast", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to generate forecast",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /forecasts/:id
func (h *ForecastHandler) Get(c *gin.Context) {
	result, err := h.forecastService.GetForecast(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondForecastError(c, err, "Failed to retrieve forecast")
		return
	}

	c.JSON(http.StatusOK, result)
}

// List handles GET /forecasts
func (h *ForecastHandler) List(c *gin.Context) {
	limit, ok := h.parseQueryInt(c, "limit", 20)
	if !ok {
		return
	}
	offset, ok := h.parseQueryInt(c, "offset", 0)
	if !ok {
		return
	}

	summaries, err := h.forecastService.ListForecasts(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list forecasts", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list forecasts",
		})
		return
	}

	c.JSON(http.StatusOK, models.ForecastListResponse{
		Forecasts: summaries,
		Total:     len(summaries),
	})
}

// RecordAccuracy handles POST /forecasts/:id/accuracy
func (h *ForecastHandler) RecordAccuracy(c *gin.Context) {
	var req models.RecordAccuracyRequest
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

	accuracy, err := h.forecastService.RecordAccuracy(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondForecastError(c, err, "Failed to record forecast accuracy")
		return
	}

	c.JSON(http.StatusOK, accuracy)
}

// ActiveAlerts handles GET /forecasts/alerts/active
func (h *ForecastHandler) ActiveAlerts(c *gin.Context) {
	var severity *models.AlertSeverity
	if raw := c.Query("severity"); raw != "" {
		parsed := models.AlertSeverity(raw)
		severity = &parsed
	}
	var category *string
	if raw := c.Query("category"); raw != "" {
		category = &raw
	}

	alerts, err := h.forecastService.ActiveAlerts(c.Request.Context(), severity, category)
	if err != nil {
		h.logger.Error("Failed to list active forecast alerts", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to list active alerts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// Scenarios handles POST /forecasts/scenarios
func (h *ForecastHandler) Scenarios(c *gin.Context) {
	var req models.ScenarioAnalysisRequest
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

	results, err := h.forecastService.AnalyzeScenarios(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to analyze scenarios", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to analyze scenarios",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scenarios": results,
		"total":     len(results),
	})
}

func (h *ForecastHandler) parseQueryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_" + name,
			Message: name + " must be a non-negative integer",
		})
		return 0, false
	}
	return parsed, true
}

// respondForecastError maps forecast service errors onto HTTP status codes
func (h *ForecastHandler) respondForecastError(c *gin.Context, err error, logMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Forecast not found",
		})
		return
	}

	h.logger.Error(logMessage, "error", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: logMessage,
	})
}
