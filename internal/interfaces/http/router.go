package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/validators"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"

	_ "github.com/helpdesk-ai/helpdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
	logger    logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if err := validators.Register(); err != nil {
		return nil, err
	}

	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:    container.engine,
		container: container,
		logger:    log,
	}, nil
}
