package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	CloseEvent(c *ginext.Context)
	AnnounceEvent(c *ginext.Context)
	ExportEventICS(c *ginext.Context)
	CreateTalk(c *ginext.Context)
	UpvoteTalk(c *ginext.Context)
	AcceptTalk(c *ginext.Context)
	GenerateSuggestion(c *ginext.Context)
	HideEvent(c *ginext.Context)
	UnhideEvent(c *ginext.Context)
	GetProfile(c *ginext.Context)
	SaveProfile(c *ginext.Context)
	GetAPIKeyStatus(c *ginext.Context)
	SaveAPIKey(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/close", h.CloseEvent)
		api.POST("/events/:id/announce", h.AnnounceEvent)
		api.GET("/events/:id/ics", h.ExportEventICS)

		// Talks
		api.POST("/events/:id/talks", h.CreateTalk)
		api.POST("/events/:id/talks/:talkId/vote", h.UpvoteTalk)
		api.POST("/events/:id/talks/:talkId/accept", h.AcceptTalk)

		// Suggestions
		api.POST("/suggestions", h.GenerateSuggestion)

		// Local overrides
		api.POST("/events/:id/hide", h.HideEvent)
		api.DELETE("/events/:id/hide", h.UnhideEvent)
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.SaveProfile)
		api.GET("/apikey", h.GetAPIKeyStatus)
		api.PUT("/apikey", h.SaveAPIKey)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
