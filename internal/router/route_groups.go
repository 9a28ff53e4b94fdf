package router

import (
	"github.com/gin-gonic/gin"

	"foundation_backend/internal/handlers"
	"foundation_backend/internal/middleware"
)

// SetupPublicRoutes registers everything the public site uses without a
// session: listings, the public intake and contact forms, gallery and blog
// reads, stats, and login.
func SetupPublicRoutes(
	engine *gin.Engine,
	memberHandler *handlers.MemberHandler,
	eventHandler *handlers.EventHandler,
	contactHandler *handlers.ContactHandler,
	galleryHandler *handlers.GalleryHandler,
	blogHandler *handlers.BlogHandler,
	statsHandler *handlers.StatsHandler,
	authHandler *handlers.AuthHandler,
) {
	api := engine.Group("/api")
	{
		api.GET("/members", memberHandler.ListMembers)
		api.POST("/members", memberHandler.CreateMember)

		api.GET("/events", eventHandler.ListUpcomingEvents)

		api.POST("/contact", contactHandler.CreateMessage)

		api.GET("/gallery", galleryHandler.ListItems)

		api.GET("/blog", blogHandler.ListPosts)
		api.GET("/blog/:filename", blogHandler.GetPost)
		api.GET("/blog/:filename/download", blogHandler.DownloadPost)

		api.GET("/stats", statsHandler.GetStats)

		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
	}

	engine.GET("/gallery/:filename", galleryHandler.ServeFile)
}

// SetupOperatorRoutes registers the session-gated routes: event creation,
// contact message review, and gallery uploads.
func SetupOperatorRoutes(
	engine *gin.Engine,
	jwtSecret string,
	eventHandler *handlers.EventHandler,
	contactHandler *handlers.ContactHandler,
	galleryHandler *handlers.GalleryHandler,
) {
	operator := engine.Group("/api")
	operator.Use(middleware.AuthMiddleware(jwtSecret))
	{
		operator.POST("/events", eventHandler.CreateEvent)
		operator.GET("/contact", contactHandler.ListMessages)
		operator.POST("/gallery/upload", galleryHandler.UploadItem)
	}
}
