package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/rfid"
)

func newRFIDRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	simulator := rfid.NewSimulator(rand.New(rand.NewSource(1)), 12, nil)
	handler := NewRFIDHandler(simulator, testLogger())

	router := gin.New()
	router.GET("/rfid/tags", handler.ListTags)
	router.POST("/rfid/scan", handler.Scan)
	router.POST("/rfid/transfer", handler.Transfer)
	router.GET("/rfid/alerts", handler.ListAlerts)
	router.POST("/rfid/audit", handler.RunAudit)
	return router
}

func TestRFIDListTags(t *testing.T) {
	w := performJSON(newRFIDRouter(t), "GET", "/rfid/tags", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tags  []rfid.Tag `json:"tags"`
		Total int        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)
	assert.Len(t, resp.Tags, 12)
}

func TestRFIDScan(t *testing.T) {
	t.Run("scans all locations without a body", func(t *testing.T) {
		w := performJSON(newRFIDRouter(t), "POST", "/rfid/scan", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Events []rfid.ScanEvent `json:"events"`
			Total  int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, len(resp.Events), resp.Total)
	})

	t.Run("scans a single location", func(t *testing.T) {
		w := performJSON(newRFIDRouter(t), "POST", "/rfid/scan", map[string]interface{}{
			"location": "Lumut Armament Depot",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Events []rfid.ScanEvent `json:"events"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		for _, event := range resp.Events {
			assert.Equal(t, "Lumut Armament Depot", event.Location)
		}
	})
}

func TestRFIDTransfer(t *testing.T) {
	router := newRFIDRouter(t)

	t.Run("relocates an existing tag", func(t *testing.T) {
		w := performJSON(router, "POST", "/rfid/transfer", map[string]interface{}{
			"tag_id":   "RFID-0001",
			"location": "Tanjung Gelang Depot",
		})

		// RFID-0001 may have been generated missing; either outcome is a
		// well-formed response.
		assert.Contains(t, []int{http.StatusOK, http.StatusConflict}, w.Code)
	})

	t.Run("returns 404 for an unknown tag", func(t *testing.T) {
		w := performJSON(router, "POST", "/rfid/transfer", map[string]interface{}{
			"tag_id":   "RFID-9999",
			"location": "Tanjung Gelang Depot",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w := performJSON(router, "POST", "/rfid/transfer", map[string]interface{}{
			"tag_id": "RFID-0001",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRFIDListAlerts(t *testing.T) {
	w := performJSON(newRFIDRouter(t), "GET", "/rfid/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Alerts []rfid.Alert `json:"alerts"`
		Total  int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Alerts), resp.Total)
}

func TestRFIDRunAudit(t *testing.T) {
	w := performJSON(newRFIDRouter(t), "POST", "/rfid/audit", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var report rfid.AuditReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.NotEmpty(t, report.AuditID)
	assert.GreaterOrEqual(t, report.Accuracy, 0.0)
	assert.LessOrEqual(t, report.Accuracy, 100.0)
}
