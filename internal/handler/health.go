package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/luxury-living/internal/config"
	"github.com/deppfellow/luxury-living/internal/middleware"
	"github.com/deppfellow/luxury-living/internal/server"
	"github.com/labstack/echo/v4"
)

// LivenessMessage is the body of GET /. Uptime monitors match on it.
const LivenessMessage = "Web Projects Server is Running"

// Pinger is the part of the database the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness route and the dependency health report.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	// A nil *database.Database must not become a non-nil interface.
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// Liveness answers 200 without touching any dependency.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, LivenessMessage)
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth runs the configured checks and answers 200 when all pass,
// 503 otherwise.
//
// Supported checks:
//
//	database  pings the MongoDB primary
//	payment   reports whether a payment secret key is configured; never fails
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := config.DefaultObservabilityConfig().HealthChecks
	if h.server.Config.Observability != nil {
		cfg = h.server.Config.Observability.HealthChecks
	}

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	if !cfg.Enabled {
		return c.JSON(http.StatusOK, response)
	}

	healthy := true
	for _, name := range cfg.Checks {
		var result checkResult

		switch name {
		case "database":
			result = h.checkDatabase(c.Request().Context(), cfg.Timeout)
			if result.Status != "healthy" {
				healthy = false
				logger.Error().Str("error", result.Error).Msg("database health check failed")
				h.recordFailure(name, result)
			}

		case "payment":
			result = checkResult{Status: "not_configured"}
			if h.server.Payment != nil && h.server.Payment.Configured() {
				result.Status = "configured"
			}

		default:
			result = checkResult{Status: "unknown"}
		}

		response.Checks[name] = result
	}

	if !healthy {
		response.Status = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context, timeout time.Duration) checkResult {
	if h.db == nil {
		return checkResult{Status: "unhealthy", Error: "database not initialized"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return checkResult{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}

	return checkResult{Status: "healthy", ResponseTime: time.Since(start).String()}
}

func (h *HealthHandler) recordFailure(check string, result checkResult) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":    check,
		"operation":     "health_check",
		"error_message": result.Error,
	})
}
