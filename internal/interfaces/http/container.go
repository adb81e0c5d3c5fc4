package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketUsecases "github.com/helpdesk-ai/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/middleware"
	shareddb "github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, and is responsible for wiring them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	txMgr  *shareddb.TransactionManager

	// Repositories
	repos *repositories

	// Outbound collaborators
	svcs *services

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
// Redis is optional: without it the rate limiter is disabled.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		txMgr:  shareddb.NewTransactionManager(db),
	}

	// Section 1: Infrastructure - Redis, Repositories, Middlewares
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Services - Mail transport, Analyzer
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers
	c.initHandlers()

	return c, nil
}

// Close releases the Redis connection. The database is owned by the caller.
func (c *Container) Close() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}

// IngestInbound exposes the intake use case to processes that accept mail
// outside HTTP, such as the mailbox worker.
func (c *Container) IngestInbound() *ticketUsecases.IngestInboundUseCase {
	return c.ucs.ingestInboundUC
}

// Redis returns the shared client, or nil when Redis is disabled.
func (c *Container) Redis() *redis.Client {
	return c.redis
}
