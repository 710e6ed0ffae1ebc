// Package server exposes the webhook intake over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	Intake interfaces.WebhookIntakeUseCase
	Logger interfaces.Logger

	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter configures the gin engine with all routes.
func NewRouter(deps *Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GM")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "web3-hooks",
		})
	})

	webhooks := NewWebhookHandler(deps.Intake)
	r.POST("/tokenupgrade", webhooks.Handle(entities.EventTypeUpgrade))
	r.POST("/tokendowngrade", webhooks.Handle(entities.EventTypeDowngrade))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	return r
}
