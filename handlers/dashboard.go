package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"signal-dashboard/dashboard"
)

// DashboardHandler renders the server-side dashboard from the store.
type DashboardHandler struct {
	store *dashboard.Store
}

func NewDashboardHandler(store *dashboard.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Dashboard refetches all resources and renders the page. Query params:
// view selects the visible section, q filters the signal table and
// notifications=open shows the alerts dropdown.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	h.store.Refresh(c.Request.Context())

	page := dashboard.BuildPage(h.store.Snapshot(), dashboard.PageOptions{
		View:              c.DefaultQuery("view", "dashboard"),
		Query:             c.Query("q"),
		NotificationsOpen: c.Query("notifications") == "open",
	})

	c.HTML(http.StatusOK, "dashboard.html", page)
}

// Table re-renders the signal table rows for a search term using the data
// already held by the store.
func (h *DashboardHandler) Table(c *gin.Context) {
	snap := h.store.Snapshot()
	rows := dashboard.SignalRows(dashboard.Search(snap.Signals, c.Query("q")))

	c.HTML(http.StatusOK, "signal_rows.html", rows)
}

func (h *DashboardHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": dashboard.ExportPlaceholder})
}

func (h *DashboardHandler) TopicChartImage(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Clusters == nil {
		h.store.RefreshClusters(c.Request.Context())
		snap = h.store.Snapshot()
	}

	h.writePNG(c, func(w io.Writer) error {
		return dashboard.RenderTopicPNG(w, snap.Clusters)
	})
}

func (h *DashboardHandler) ScatterChartImage(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Signals == nil {
		h.store.RefreshData(c.Request.Context())
		snap = h.store.Snapshot()
	}

	h.writePNG(c, func(w io.Writer) error {
		return dashboard.RenderScatterPNG(w, snap.Signals)
	})
}

func (h *DashboardHandler) writePNG(c *gin.Context, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if errors.Is(err, dashboard.ErrNoChartData) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("failed to render chart", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chart rendering failed"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
