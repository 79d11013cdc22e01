package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 3 * time.Second

// Pinger checks one backing dependency.
type Pinger func(ctx context.Context) error

// HealthHandler handles GET /health. The cache is optional and reported only
// when configured; it never makes the service unhealthy on its own.
type HealthHandler struct {
	database Pinger
	cache    Pinger
	now      func() time.Time
}

func NewHealthHandler(database, cache Pinger) *HealthHandler {
	return &HealthHandler{database: database, cache: cache, now: time.Now}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Check reports service health.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.now().UTC(),
	}
	code := http.StatusOK

	if err := h.database(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		code = http.StatusServiceUnavailable
	}
	if h.cache != nil {
		resp.Cache = "connected"
		if err := h.cache(ctx); err != nil {
			resp.Cache = "disconnected"
		}
	}

	return c.JSON(code, resp)
}
