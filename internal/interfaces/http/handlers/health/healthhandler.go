package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
	"github.com/helpdesk-ai/helpdesk/internal/shared/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck handles GET /health
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} utils.OKResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.OK(c)
}

// Version handles GET /version to return the current application version
// @Summary Build version
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Current,
		"release": version.IsRelease(version.Current),
	})
}
