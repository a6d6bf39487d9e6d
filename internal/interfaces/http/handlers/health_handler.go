package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// HealthHandler reports liveness and dependency health.
type HealthHandler struct {
	db    *gorm.DB
	redis *goredis.Client
	log   logger.Logger
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(db *gorm.DB, redis *goredis.Client, log logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, log: log}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	checks := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}
	status := http.StatusOK

	if err := postgres.Ping(ctx, h.db); err != nil {
		checks["database"] = "error: " + err.Error()
		status = http.StatusServiceUnavailable
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		}
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":    state,
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	})
}
