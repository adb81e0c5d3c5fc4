package http

import (
	"context"
	"fmt"

	"github.com/helpdesk-ai/helpdesk/internal/application/analyzer"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/cache"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/email"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/ratelimit"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdesk-ai/helpdesk/internal/shared/services/markdown"
)

// services holds the outbound collaborators shared by several use cases.
type services struct {
	emailSender *email.SMTPEmailService
	analyzer    *analyzer.Analyzer
}

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Middlewares
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.repos = newRepositories(c.db)
	c.authMiddleware = middleware.NewAuthMiddleware(cfg.Auth.APIKey, c.log)

	if !cfg.Redis.Enabled {
		if cfg.RateLimit.Enabled {
			c.log.Warnw("rate limiting requires redis; requests will not be limited")
		}
		return nil
	}

	redisClient, err := cache.NewRedisClient(context.Background(), &cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = redisClient
	c.log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient, ratelimit.Config{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window(),
		})
		c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)
	}

	return nil
}

// ============================================================
// Section 2: Services - Mail transport, Analyzer
// ============================================================

func (c *Container) initServices() error {
	policy, err := analyzer.PolicyByName(c.cfg.Analyzer.PriorityPolicy)
	if err != nil {
		return fmt.Errorf("invalid analyzer configuration: %w", err)
	}

	c.svcs = &services{
		emailSender: email.NewSMTPEmailService(c.cfg.Email, markdown.NewMarkdownService(), c.log),
		analyzer:    analyzer.New(policy),
	}
	return nil
}
