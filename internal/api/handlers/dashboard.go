package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"powerplant-dispatch/internal/apierr"
	"powerplant-dispatch/internal/dashboard"
	"powerplant-dispatch/internal/history"
)

// DashboardHandler serves the HTML dispatch-history chart.
type DashboardHandler struct {
	Store *history.Store
}

// NewDashboardHandler builds a DashboardHandler backed by store.
func NewDashboardHandler(store *history.Store) *DashboardHandler {
	return &DashboardHandler{Store: store}
}

// Show handles GET /dashboard.
func (h *DashboardHandler) Show(c *gin.Context) {
	records, err := h.Store.Recent(c.Request.Context(), 100)
	if err != nil {
		apiErr := apierr.Internal(err.Error())
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	// Render expects oldest-first; Recent returns newest-first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Render(c.Writer, records); err != nil {
		apiErr := apierr.Internal(err.Error())
		c.JSON(apiErr.StatusCode, apiErr)
	}
}
