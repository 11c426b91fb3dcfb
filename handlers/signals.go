package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"signal-dashboard/models"
	"signal-dashboard/repositories"
)

// APIHandler serves the JSON endpoints the dashboard reads from.
type APIHandler struct {
	repo repositories.SignalRepository
}

func NewAPIHandler(repo repositories.SignalRepository) *APIHandler {
	return &APIHandler{repo: repo}
}

// GetData returns every signal as a JSON array.
func (h *APIHandler) GetData(c *gin.Context) {
	signals, err := h.repo.All(c.Request.Context())
	if err != nil {
		slog.Error("failed to load signals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if signals == nil {
		signals = []models.Signal{}
	}

	c.JSON(http.StatusOK, signals)
}

// GetStats returns the headline aggregates, or an empty object when no
// signals are loaded.
func (h *APIHandler) GetStats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if stats.TotalSignals == 0 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetClusters returns cluster counts as an object, largest cluster first.
func (h *APIHandler) GetClusters(c *gin.Context) {
	clusters, err := h.repo.Clusters(c.Request.Context())
	if err != nil {
		slog.Error("failed to count clusters", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, clusters)
}
