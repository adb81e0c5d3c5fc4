package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// Middlewares run before every ticket route (API key, rate limit).
	Middlewares []gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.Middlewares...)
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("/inbound", config.TicketHandler.CreateInbound)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Workflow actions
		tickets.POST("/:id/approve-send", config.TicketHandler.ApproveSend)
		tickets.POST("/:id/request-info", config.TicketHandler.RequestInfo)
		tickets.POST("/:id/escalate", config.TicketHandler.Escalate)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
