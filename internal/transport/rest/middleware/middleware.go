package middleware

import (
	"book_translator/internal/metrics"
	"book_translator/utils"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

// RequestID puts the incoming X-Request-ID (or a new one) into the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rqID := c.GetHeader(RequestIDHeader)
		if rqID == "" {
			rqID = utils.NewRequestID()
		}

		c.Request = c.Request.WithContext(utils.ContextWithRqID(c.Request.Context(), rqID))
		c.Header(RequestIDHeader, rqID)

		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info(
			"http request",
			slog.String("rqID", utils.GetRequestIDFromCtx(c.Request.Context())),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("clientIP", c.ClientIP()),
		)
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HttpRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
