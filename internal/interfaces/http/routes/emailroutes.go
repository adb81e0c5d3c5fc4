package routes

import (
	"github.com/gin-gonic/gin"

	emailhandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/email"
	exporthandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/export"
)

type OutboundRouteConfig struct {
	EmailHandler  *emailhandlers.EmailHandler
	ExportHandler *exporthandlers.ExportHandler
	Middlewares   []gin.HandlerFunc
}

// SetupOutboundRoutes registers the routes that hand data out of the system:
// direct email and ticket exports.
func SetupOutboundRoutes(engine *gin.Engine, config *OutboundRouteConfig) {
	email := engine.Group("/email")
	email.Use(config.Middlewares...)
	{
		email.POST("/send", config.EmailHandler.Send)
	}

	export := engine.Group("/export")
	export.Use(config.Middlewares...)
	{
		export.GET("/tickets.csv", config.ExportHandler.TicketsCSV)
		export.GET("/tickets.xlsx", config.ExportHandler.TicketsXLSX)
	}
}
