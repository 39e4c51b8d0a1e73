package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"powerplant-dispatch/internal/apierr"
	"powerplant-dispatch/internal/api/models"
	"powerplant-dispatch/internal/history"
)

// HistoryHandler serves the audit-trail endpoints.
type HistoryHandler struct {
	Store *history.Store
}

// NewHistoryHandler builds a HistoryHandler backed by store.
func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{Store: store}
}

// List handles GET /history?limit=N.
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			apiErr := apierr.Invalid("limit must be a positive integer")
			c.JSON(apiErr.StatusCode, apiErr)
			return
		}
		limit = n
	}

	records, err := h.Store.Recent(c.Request.Context(), limit)
	if err != nil {
		apiErr := apierr.Internal(err.Error())
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	entries := make([]models.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = models.HistoryEntry{
			ID:          r.ID,
			RequestedAt: r.RequestedAt,
			Load:        r.LoadMW,
			Feasible:    r.Feasible,
			Detail:      r.Detail,
		}
	}
	c.JSON(http.StatusOK, entries)
}
