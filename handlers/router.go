package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/locale"
	"musicpass-backend/logging"
	"musicpass-backend/marketplace"
	"musicpass-backend/monitoring"
	"musicpass-backend/session"
)

type Dependencies struct {
	Catalog        *catalog.Catalog
	Store          *session.Store
	Issuer         *session.Issuer
	Market         marketplace.Marketplace
	Locales        *locale.Bundle
	Logger         *log.Logger
	AllowedOrigins []string
}

func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(logging.Recovery(d.Logger), logging.Requests(d.Logger), monitoring.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = d.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept-Language"}
	router.Use(cors.New(corsConfig))

	sessionHandler := NewSessionHandler(d.Catalog, d.Store, d.Issuer, d.Locales, d.Logger)
	ticketHandler := NewTicketHandler(d.Catalog, d.Market, d.Locales, d.Logger)
	checkinHandler := NewCheckinHandler(d.Catalog, d.Logger)
	eventHandler := NewEventHandler(d.Catalog, d.Market, d.Logger)
	rewardHandler := NewRewardHandler(d.Catalog, d.Locales)

	api := router.Group("/api/v1")
	{
		api.POST("/session/login", sessionHandler.Login)

		authed := api.Group("", RequireSession(d.Issuer, d.Store))

		// Session routes
		authed.GET("/session", sessionHandler.GetSession)
		authed.POST("/session/actions", sessionHandler.ApplyAction)

		// Ticket routes
		authed.GET("/tickets", ticketHandler.GetTickets)
		authed.GET("/tickets/:id", ticketHandler.GetTicket)
		authed.GET("/tickets/:id/qr", checkinHandler.GetTicketQR)
		authed.POST("/tickets/:id/sell", ticketHandler.SellTicket)

		// Event routes
		authed.GET("/events", eventHandler.GetEvents)
		authed.GET("/events/genres", eventHandler.GetGenres)
		authed.POST("/events/:id/favorite", eventHandler.ToggleFavorite)
		authed.POST("/events/:id/select", eventHandler.SelectEvent)

		// Reward routes
		authed.GET("/rewards/artists/:artist", rewardHandler.GetArtistRewards)
		authed.GET("/rewards/profile", rewardHandler.GetProfileRewards)
		authed.GET("/nfts", rewardHandler.GetNFTs)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"sessions":  d.Store.Len(),
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", monitoring.Handler())

	return router
}
