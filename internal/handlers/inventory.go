package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/repository"
	"github.com/tldm-bits/ordnance-service/internal/service"
)

// InventoryHandler handles ordnance inventory HTTP requests
type InventoryHandler struct {
	inventoryService service.InventoryService
	logger           *slog.Logger
	validator        *validator.Validate
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// ListItems handles GET /items
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var category *models.Category
	if raw := c.Query("category"); raw != "" {
		normalized, ok := models.NormalizeCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_category",
				Message: "Unknown ordnance category: " + raw,
			})
			return
		}
		category = &normalized
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("Failed to list ordnance items", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve inventory",
		})
		return
	}

	c.JSON(http.StatusOK, models.ItemListResponse{
		Items: items,
		Total: len(items),
	})
}

// CreateItem handles POST /items
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
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

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.respondServiceError(c, err, "Failed to create ordnance item")
		return
	}

	h.logger.Info("Ordnance item created", "item_id", item.ID, "category", item.Category)
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /items/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
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

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, &req)
	if err != nil {
		h.respondServiceError(c, err, "Failed to update ordnance item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.respondServiceError(c, err, "Failed to delete ordnance item")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTransfer handles POST /transfers
func (h *InventoryHandler) CreateTransfer(c *gin.Context) {
	var req models.TransferRequest
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

	transfer, err := h.inventoryService.TransferItem(c.Request.Context(), &req)
	if err != nil {
		h.respondServiceError(c, err, "Failed to transfer ordnance item")
		return
	}

	h.logger.Info("Ordnance transferred",
		"item_id", transfer.ItemID,
		"from", transfer.FromHolder,
		"to", transfer.ToHolder,
		"quantity", transfer.Quantity)
	c.JSON(http.StatusCreated, transfer)
}

// ListTransfers handles GET /transfers
func (h *InventoryHandler) ListTransfers(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	transfers, err := h.inventoryService.ListTransfers(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list transfers", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to retrieve transfers",
		})
		return
	}

	c.JSON(http.StatusOK, models.TransferListResponse{
		Transfers: transfers,
		Total:     len(transfers),
	})
}

// GetReadiness handles GET /readiness
func (h *InventoryHandler) GetReadiness(c *gin.Context) {
	metrics, err := h.inventoryService.GetReadiness(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute readiness", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to compute readiness",
		})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *InventoryHandler) parseItemID(c *gin.Context) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_item_id",
			Message: "Item ID must be a UUID",
		})
		return uuid.Nil, false
	}
	return itemID, true
}

// respondServiceError maps service errors onto HTTP status codes
func (h *InventoryHandler) respondServiceError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Ordnance item not found",
		})
	case errorIsValidation(err):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInsufficientQuantity), errors.Is(err, service.ErrSameHolder):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "transfer_rejected",
			Message: err.Error(),
		})
	default:
		h.logger.Error(logMessage, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: logMessage,
		})
	}
}
