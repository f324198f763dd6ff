package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-cms/cache"
	"news-cms/config"
	"news-cms/handlers"
	"news-cms/helper"
	"news-cms/middleware"
	"news-cms/repositories"
	"news-cms/routes"
	"news-cms/services"
	"news-cms/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title News CMS API
// @version 1.0
// @description Posts, tags, author, contacts and encyclopedia for the news site.
// @BasePath /
// @securityDefinitions.apikey bearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.InitLogger(cfg.App.Environment)

	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Token revocation store
	var revoked cache.TokenStore = cache.NewMemoryTokenStore()
	if cfg.Redis.Addr != "" {
		redisClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		}
		revoked = cache.NewRedisTokenStore(redisClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Token revocations stored in redis")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, token revocations kept in memory")
	}

	// Image storage
	var images storage.Storage
	uploadsDir := ""
	switch cfg.Storage.Driver {
	case "minio":
		images, err = storage.NewMinIOStorage(ctx, cfg.Storage.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize minio storage")
		}
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.UploadsDir, cfg.Storage.PublicPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize uploads directory")
		}
		images = local
		uploadsDir = local.Dir()
	}

	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	authorRepo := repositories.NewAuthorRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	termRepo := repositories.NewTermRepository(db)

	// Initialize services
	tokens := services.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	authService := services.NewAuthService(adminRepo, tokens, revoked)
	postService := services.NewPostService(postRepo, tagRepo, images)
	tagService := services.NewTagService(tagRepo, postRepo)
	authorService := services.NewAuthorService(authorRepo, images)
	contactService := services.NewContactService(contactRepo)
	termService := services.NewTermService(termRepo)
	categoryService := services.NewCategoryService(postRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	router, err := routes.SetupRouter(routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, httpHelper),
		Post:     handlers.NewPostHandler(postService, httpHelper),
		Tag:      handlers.NewTagHandler(tagService, httpHelper),
		Author:   handlers.NewAuthorHandler(authorService, httpHelper),
		Contact:  handlers.NewContactHandler(contactService, httpHelper),
		Term:     handlers.NewTermHandler(termService, httpHelper),
		Category: handlers.NewCategoryHandler(categoryService, httpHelper),
	}, authService, httpHelper, routes.Options{
		UploadsDir:     uploadsDir,
		UploadsPath:    cfg.Storage.PublicPath,
		TrustedProxies: cfg.App.TrustedProxies,
		LoginLimiter:   middleware.NewRateLimiter(cfg.Limits.LoginPerMinute),
		ContactLimiter: middleware.NewRateLimiter(cfg.Limits.ContactPerMinute),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("Server exited")
}
