package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/router"
	"github.com/platewise/backend/internal/service"
)

// Server wires the service graph and runs the HTTP listener.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
	sqlDB  *database.DB
}

// New builds a fully wired server from configuration. Redis and S3 are
// optional at startup: without redis the generate route runs unthrottled,
// without S3 image uploads return 503.
func New(cfg *config.Config) (*Server, error) {
	sqlDB, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open ORM connection: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	llmService, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM service: %w", err)
	}

	var limiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("[Server] redis unavailable, generation rate limiting disabled: %v", err)
	} else {
		limiter = middleware.NewGenerationRateLimiter(redisClient)
	}

	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("[Server] S3 unavailable, image uploads disabled: %v", err)
	} else {
		if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("[Server] failed to apply bucket policy, stored image URLs may not be public: %v", err)
		}
		imageService = service.NewImageService(s3Config)
	}

	prefs := service.NewPreferenceService(db)
	deps := api.Deps{
		DB:          db,
		Auth:        service.NewAuthService(cfg.JWTSecret),
		Generation:  service.NewGenerationService(db, prefs, llmService),
		Recipes:     service.NewRecipeService(db),
		Preferences: prefs,
		Images:      imageService,
		RateLimiter: limiter,
		Health:      sqlDB,
		Config:      cfg,
	}

	engine := router.SetupRouter(deps, allowedOrigins())

	return &Server{cfg: cfg, engine: engine, db: db, sqlDB: sqlDB}, nil
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return nil
}

// Start runs the HTTP listener until it fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the health-check
// connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sqlDB != nil {
		defer func() { _ = s.sqlDB.Close() }()
	}
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
