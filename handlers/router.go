package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"signal-dashboard/templates"
)

// NewRouter wires the API and dashboard routes onto a fresh gin engine.
func NewRouter(api *APIHandler, dash *DashboardHandler) (*gin.Engine, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	r.GET("/dashboard", dash.Dashboard)
	ui := r.Group("/dashboard")
	{
		ui.GET("/table", dash.Table)
		ui.POST("/export", dash.Export)
		ui.GET("/charts/topics.png", dash.TopicChartImage)
		ui.GET("/charts/scatter.png", dash.ScatterChartImage)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/data", api.GetData)
		apiGroup.GET("/stats", api.GetStats)
		apiGroup.GET("/clusters", api.GetClusters)
	}

	return r, nil
}
