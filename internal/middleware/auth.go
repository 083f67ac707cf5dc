package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

// ContextCallerKey is the gin context key storing the resolved *models.Caller.
const ContextCallerKey = "caller"

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Caller, error)
}

// Auth resolves the bearer token into a caller. Requests without an
// Authorization header continue anonymously; a present but invalid token is rejected.
func Auth(auth authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		caller, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextCallerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the authenticated caller, or nil for anonymous requests.
func CallerFrom(c *gin.Context) *models.Caller {
	value, exists := c.Get(ContextCallerKey)
	if !exists {
		return nil
	}
	caller, _ := value.(*models.Caller)
	return caller
}

// RequireAccess rejects callers below the given access level.
func RequireAccess(level models.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !caller.Allows(level) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "requires "+level.String()+" access"))
			c.Abort()
			return
		}
		c.Next()
	}
}
