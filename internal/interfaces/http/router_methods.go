package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.ErrorHandler(r.logger))

	r.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", c.hdlrs.healthHandler.Version)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := r.protectedMiddlewares()

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: c.hdlrs.ticketHandler,
		Middlewares:   protected,
	})

	routes.SetupKBRoutes(r.engine, &routes.KBRouteConfig{
		KBHandler:   c.hdlrs.kbHandler,
		Middlewares: protected,
	})

	routes.SetupOutboundRoutes(r.engine, &routes.OutboundRouteConfig{
		EmailHandler:  c.hdlrs.emailHandler,
		ExportHandler: c.hdlrs.exportHandler,
		Middlewares:   protected,
	})
}

// protectedMiddlewares returns the chain for every route except /health,
// /version and the API docs.
func (r *Router) protectedMiddlewares() []gin.HandlerFunc {
	chain := []gin.HandlerFunc{}
	if r.container.rateLimiter != nil {
		chain = append(chain, r.container.rateLimiter.Limit())
	}
	return append(chain, r.container.authMiddleware.RequireAPIKey())
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases resources held by the router
func (r *Router) Shutdown() {
	r.container.Close()
}
