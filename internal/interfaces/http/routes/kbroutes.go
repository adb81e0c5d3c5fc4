package routes

import (
	"github.com/gin-gonic/gin"

	kbhandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/knowledge"
)

type KBRouteConfig struct {
	KBHandler   *kbhandlers.KBHandler
	Middlewares []gin.HandlerFunc
}

func SetupKBRoutes(engine *gin.Engine, config *KBRouteConfig) {
	kb := engine.Group("/kb")
	kb.Use(config.Middlewares...)
	{
		kb.GET("/search", config.KBHandler.Search)

		kb.POST("/documents", config.KBHandler.CreateDocument)
		kb.GET("/documents/:id", config.KBHandler.GetDocument)
		kb.PUT("/documents/:id", config.KBHandler.UpdateDocument)
	}
}
