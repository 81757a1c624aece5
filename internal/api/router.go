package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"easypark-backend/config"
	"easypark-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router over the handler's
// dependencies.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	// The cache only fronts static content (the VAPID key); lot state is
	// always served live.
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/lot", h.CreateLot)
		api.GET("/lot", h.GetLot)
		api.GET("/lot/report", h.GetLotReport)
		api.GET("/lot/charges", h.GetChargeReport)

		api.POST("/vehicles", h.ParkVehicle)
		api.DELETE("/vehicles", h.RemoveVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.PATCH("/vehicles/:registration/charge", h.SetCharge)

		api.GET("/search/registration/:registration", h.FindByRegistration)
		api.GET("/search/color/:color", h.FindByColor)

		api.GET("/events", h.GetEvents)

		api.GET("/push/vapid_public_key", caching, h.GetVAPIDPublicKey)
		api.GET("/push/subscriptions", h.GetSubscription)
		api.PUT("/push/subscriptions", h.PutSubscription)
		api.DELETE("/push/subscriptions", h.DeleteSubscription)
	}

	return r
}
