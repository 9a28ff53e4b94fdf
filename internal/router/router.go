package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/config"
	"foundation_backend/internal/handlers"
	"foundation_backend/internal/repositories"
	"foundation_backend/internal/services"
	"foundation_backend/internal/storage"
	"foundation_backend/pkg/monitoring"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, cfg *config.Config) error {
	blobs, err := storage.NewDiskBlobStore(cfg.GalleryDir)
	if err != nil {
		return err
	}

	// Initialize Repositories
	memberRepo := repositories.NewMemberRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)

	// Initialize Services
	memberService := services.NewMemberService(memberRepo, db)
	eventService := services.NewEventService(eventRepo, db)
	contactService := services.NewContactService(contactRepo, db)
	galleryService := services.NewGalleryService(galleryRepo, blobs, db)
	authService := services.NewAuthService(cfg.Credentials, cfg.JWTSecret, cfg.SessionTTL)
	blogService := services.NewBlogService(cfg.BlogDir)
	statsService := services.NewStatsService(memberRepo, eventRepo, contactRepo, galleryRepo)

	// Initialize Handlers
	memberHandler := handlers.NewMemberHandler(memberService)
	eventHandler := handlers.NewEventHandler(eventService)
	contactHandler := handlers.NewContactHandler(contactService)
	galleryHandler := handlers.NewGalleryHandler(galleryService, cfg.MaxUploadBytes)
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)
	statsHandler := handlers.NewStatsHandler(statsService)

	engine.NoRoute(handlers.NotFound)
	engine.GET("/health", handlers.HealthCheck(db))
	engine.GET("/metrics", monitoring.Handler())

	SetupPublicRoutes(engine, memberHandler, eventHandler, contactHandler, galleryHandler, blogHandler, statsHandler, authHandler)
	SetupOperatorRoutes(engine, cfg.JWTSecret, eventHandler, contactHandler, galleryHandler)

	return nil
}
