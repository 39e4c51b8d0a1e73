// Package handlers wires gin routes to the dispatch core, converting
// between wire DTOs and the internal domain model and translating planner
// failures into the API's error envelope.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"powerplant-dispatch/internal/actuation"
	"powerplant-dispatch/internal/apierr"
	"powerplant-dispatch/internal/api/models"
	"powerplant-dispatch/internal/config"
	"powerplant-dispatch/internal/dispatch"
	"powerplant-dispatch/internal/history"
	"powerplant-dispatch/internal/metrics"
	"powerplant-dispatch/internal/planner"
	"powerplant-dispatch/internal/stream"
	"powerplant-dispatch/internal/tracing"
)

// PlanHandler serves the production plan endpoints.
type PlanHandler struct {
	Defaults    config.FuelDefaults
	History     *history.Store
	Broadcaster *stream.Broadcaster
	Actuator    *actuation.Actuator
}

// NewPlanHandler builds a PlanHandler from its dependencies.
func NewPlanHandler(defaults config.FuelDefaults, store *history.Store, bc *stream.Broadcaster, act *actuation.Actuator) *PlanHandler {
	return &PlanHandler{Defaults: defaults, History: store, Broadcaster: bc, Actuator: act}
}

// Plan handles POST /productionplan.
func (h *PlanHandler) Plan(c *gin.Context) {
	ctx, span := tracing.Tracer().Start(c.Request.Context(), "handlers.Plan")
	defer span.End()

	var req models.ProductionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := apierr.Invalid(err.Error())
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	grid, err := req.ToGrid(h.Defaults)
	if err != nil {
		apiErr := apierr.Invalid(err.Error())
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}
	span.SetAttributes(
		attribute.Int("plant_count", len(grid.Plants)),
		attribute.Float64("load_mw", grid.LoadMW),
	)

	start := time.Now()
	alloc, planErr := dispatch.Plan(grid)
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	metrics.PlantsPerRequest.Observe(float64(len(grid.Plants)))

	h.History.Save(ctx, grid, alloc, planErr)

	if planErr != nil {
		if errors.Is(planErr, planner.ErrInfeasible) {
			metrics.PlanRequests.WithLabelValues("infeasible").Inc()
			apiErr := apierr.Infeasible(planErr.Error())
			c.JSON(apiErr.StatusCode, apiErr)
			return
		}
		metrics.PlanRequests.WithLabelValues("error").Inc()
		apiErr := apierr.Internal(planErr.Error())
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	metrics.PlanRequests.WithLabelValues("ok").Inc()
	h.Broadcaster.Publish(alloc)
	h.Actuator.Apply(alloc)

	c.JSON(http.StatusOK, alloc)
}

// GetDefaults handles GET /productionplan/defaults.
func (h *PlanHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultsResponse{
		Fuels: models.FuelsRequest{
			Gas:      h.Defaults.GasPricePerMWh,
			Kerosine: h.Defaults.KerosinePricePerMWh,
			CO2:      h.Defaults.CO2PricePerTon,
			WindPct:  h.Defaults.WindPct,
		},
	})
}
