package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

// AuthMiddleware guards routes with the single shared API key.
type AuthMiddleware struct {
	apiKey []byte
	logger logger.Interface
}

func NewAuthMiddleware(apiKey string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		apiKey: []byte(apiKey),
		logger: logger,
	}
}

// RequireAPIKey rejects requests without X-API-Key with 401 and requests
// with a different key with 403.
func (m *AuthMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(constants.HeaderAPIKey)
		if key == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing API key"))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), m.apiKey) != 1 {
			m.logger.Warnw("rejected request with invalid API key",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("invalid API key"))
			c.Abort()
			return
		}

		c.Next()
	}
}
