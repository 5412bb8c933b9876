package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tldm-bits/ordnance-service/internal/rfid"
)

// RFIDHandler serves the simulated RFID panels
type RFIDHandler struct {
	simulator *rfid.Simulator
	logger    *slog.Logger
}

// NewRFIDHandler creates a new RFID handler
func NewRFIDHandler(simulator *rfid.Simulator, logger *slog.Logger) *RFIDHandler {
	return &RFIDHandler{
		simulator: simulator,
		logger:    logger,
	}
}

// ListTags handles GET /rfid/tags
func (h *RFIDHandler) ListTags(c *gin.Context) {
	tags := h.simulator.Tags()
	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"total": len(tags),
	})
}

// scanRequest is the body for POST /rfid/scan
type scanRequest struct {
	Location string `json:"location"`
}

// Scan handles POST /rfid/scan
func (h *RFIDHandler) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	events := h.simulator.Scan(req.Location)
	h.logger.Debug("RFID scan completed", "location", req.Location, "events", len(events))

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

// transferRequest is the body for POST /rfid/transfer
type transferRequest struct {
	TagID    string `json:"tag_id" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// Transfer handles POST /rfid/transfer
func (h *RFIDHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.simulator.Transfer(req.TagID, req.Location); err != nil {
		status := http.StatusConflict
		if errors.Is(err, rfid.ErrUnknownTag) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   "transfer_failed",
			"message": err.Error(),
		})
		return
	}

	h.logger.Info("RFID tag transferred", "tag_id", req.TagID, "location", req.Location)
	c.JSON(http.StatusOK, gin.H{"status": "transferred"})
}

// ListAlerts handles GET /rfid/alerts
func (h *RFIDHandler) ListAlerts(c *gin.Context) {
	alerts := h.simulator.Alerts()
	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// RunAudit handles POST /rfid/audit
func (h *RFIDHandler) RunAudit(c *gin.Context) {
	report := h.simulator.RunAudit()
	h.logger.Info("RFID audit completed",
		"audit_id", report.AuditID,
		"accuracy", report.Accuracy,
		"missing", len(report.MissingTags))

	c.JSON(http.StatusOK, report)
}
