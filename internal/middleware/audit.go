package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/pkg/middleware/requestid"
)

// Audit logs every successful timetable change together with the caller that made it.
func Audit(logger *zap.Logger, action string) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}
		fields := []zap.Field{
			zap.String("action", action),
			zap.String("route", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestid.Value(c)),
		}
		if caller := CallerFrom(c); caller != nil {
			fields = append(fields, zap.Int64("user_id", caller.UserID), zap.String("access_level", caller.AccessLevel.String()))
		}
		logger.Info("timetable_audit", fields...)
	}
}
