package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedal-storefront/internal/catalog"
	"pedal-storefront/internal/checkout"
	"pedal-storefront/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, cat *catalog.Catalog, checkoutSvc *checkout.Service) {
	pedals := handlers.NewPedalHandler(cat)
	sessions := handlers.NewCheckoutHandler(checkoutSvc)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/pedals", pedals.BrowsePedals)
		v1.GET("/pedals/:slug", pedals.GetPedal)
		v1.POST("/checkout/sessions", sessions.CreateSession)
		v1.GET("/checkout/sessions/:id", sessions.GetSession)
	}
}
