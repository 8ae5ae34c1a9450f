package middleware

import (
	"net/http"
	"strings"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/logger"
	"fiftymais/internal/usecase"
	"fiftymais/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// RequireSession resolves the Bearer token into a session and stores it on
// the context for handlers to pass down explicitly.
func RequireSession(auth usecase.IAuthUseCase, base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		s, err := auth.GetSession(c.Request.Context(), token)
		if err != nil {
			Logger(c, base).Warn("session rejected", zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(sessionKey, s)
		c.Set(loggerKey, logger.WithSession(Logger(c, base), s.UserID))
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
