// Package server exposes the transition planner as a JSON API.
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"autodj/pkg/analysis"
	"autodj/pkg/transition"
)

// PlanRequest carries two track analyses plus optional mode and forced
// transition time.
type PlanRequest struct {
	TrackA    *analysis.TrackAnalysis `json:"track_a"`
	TrackB    *analysis.TrackAnalysis `json:"track_b"`
	Mode      string                  `json:"mode,omitempty"`
	ForceTime float64                 `json:"force_time,omitempty"`
}

// PlanResponse wraps a plan with a request-scoped ID for log correlation.
type PlanResponse struct {
	ID   string                     `json:"id"`
	Plan *transition.TransitionPlan `json:"plan"`
}

// New builds the echo instance with all routes registered.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	e.GET("/api/health", handleHealth)
	e.POST("/api/plan", handlePlan)
	e.POST("/api/cues", handleCues)

	return e
}

// Run starts the server on the given address.
func Run(addr string) error {
	logrus.WithField("addr", addr).Info("starting transition planner API")
	return New().Start(addr)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handlePlan plans a transition between two analyzed tracks.
func handlePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	plan, err := transition.Plan(req.TrackA, req.TrackB, transition.Mode(req.Mode), req.ForceTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"id":          id,
		"style":       plan.Style.Name,
		"start_time":  plan.Timing.StartTime,
		"probability": plan.SuccessProbability,
	}).Info("transition planned")

	return c.JSON(http.StatusOK, PlanResponse{ID: id, Plan: plan})
}

// handleCues derives a TrackAnalysis from raw provider features.
func handleCues(c echo.Context) error {
	var fs analysis.FeatureSet
	if err := c.Bind(&fs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, analysis.Derive(&fs))
}
