package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health — liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// pinger is a named dependency the readiness probe checks.
type pinger interface {
	Ping(ctx context.Context) error
}

type mongoPinger struct{ db *mongo.Database }

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.db.Client().Ping(ctx, nil)
}

type redisPinger struct{ client *redis.Client }

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// ReadinessHandler handles GET /health/ready — readiness probe. The endpoint
// is unauthenticated, so ping failures are logged server-side and the
// response carries only per-dependency status, never the underlying error.
type ReadinessHandler struct {
	checks map[string]pinger
	log    zerolog.Logger
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *ReadinessHandler {
	return &ReadinessHandler{
		checks: map[string]pinger{
			"mongodb": mongoPinger{db: db},
			"redis":   redisPinger{client: rdb},
		},
		log: log,
	}
}

type readinessResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	healthy := true

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			deps[name] = "unhealthy"
			healthy = false
			continue
		}
		deps[name] = "ok"
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
