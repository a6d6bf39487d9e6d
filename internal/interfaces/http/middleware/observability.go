package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// RequestID assigns every request an id, echoing the client's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, id)
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requestID reads the id set by RequestID for response envelopes.
func requestID(c *gin.Context) string {
	if id, ok := c.Request.Context().Value(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// Observability spans each request, records Prometheus metrics and writes an
// access log line.
func Observability(tm *monitoring.TracingManager, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, span := tm.StartSpan(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "not_found"
		}

		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(status), duration)
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", status),
		)

		log.Info(c.Request.Context(), "Request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("duration", duration))
	}
}
