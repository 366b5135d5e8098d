package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/passadia/internal/app/domain"
	"github.com/FACorreiaa/passadia/internal/app/domain/auth"
	"github.com/FACorreiaa/passadia/internal/app/domain/recommendation"
	"github.com/FACorreiaa/passadia/internal/app/domain/statistics"
	"github.com/FACorreiaa/passadia/internal/app/domain/user"
	"github.com/FACorreiaa/passadia/internal/app/domain/walkway"
	"github.com/FACorreiaa/passadia/internal/app/models"
	"github.com/FACorreiaa/passadia/internal/pkg/config"
	"github.com/FACorreiaa/passadia/internal/pkg/store"
)

type AppHandlers struct {
	User           *user.Handler
	Walkway        *walkway.Handler
	Recommendation *recommendation.Handler
	Statistics     *statistics.Handler
	AuthToken      *auth.AuthTokenHandler
}

func Setup(r *gin.Engine, docs store.DocumentStore, cfg *config.Config, log *zap.Logger) {
	handlers := setupDependencies(docs, cfg, log)
	setupRouter(r, handlers, cfg, log)
}

func setupDependencies(docs store.DocumentStore, cfg *config.Config, log *zap.Logger) *AppHandlers {
	baseHandler := domain.NewBaseHandler(log)

	// Create repositories
	userRepo := user.NewDocumentUserRepo(docs, log)
	walkwayRepo := walkway.NewRepository(docs, log)

	// Create services
	userService := user.NewUserService(userRepo, log)
	walkwayService := walkway.NewService(walkwayRepo, userService, log)
	recommendationService := recommendation.NewService(userRepo, walkwayRepo, cfg.Recommendation.Limit, log)
	statisticsService := statistics.NewService(userRepo, walkwayRepo, cfg.Recommendation.Limit, cfg.Recommendation.StatisticsCacheTTL, log)

	return &AppHandlers{
		User:           user.NewHandler(baseHandler, userService),
		Walkway:        walkway.NewHandler(baseHandler, walkwayService),
		Recommendation: recommendation.NewHandler(baseHandler, recommendationService),
		Statistics:     statistics.NewHandler(baseHandler, statisticsService),
		AuthToken:      auth.NewAuthTokenHandler(log, jwtConfig(cfg, log)),
	}
}

func jwtConfig(cfg *config.Config, log *zap.Logger) auth.JWTConfig {
	return auth.JWTConfig{
		SecretKey:       cfg.Auth.JWTSecret,
		TokenExpiration: cfg.Auth.TokenExpiration,
		Logger:          log,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, cfg *config.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		// Token issuing is only for local development.
		if cfg.Auth.DevTokens {
			log.Warn("Development token endpoint enabled", zap.String("path", "/api/auth/token"))
			apiGroup.POST("/auth/token", h.AuthToken.GenerateToken)
		}

		protectedAPI := apiGroup.Group("/")
		protectedAPI.Use(auth.JWTAuthMiddleware(jwtConfig(cfg, log)))
		{
			protectedAPI.GET("/auth/verify", h.AuthToken.VerifyToken)
			protectedAPI.GET("/me", h.User.GetProfile)

			recommendationsGroup := protectedAPI.Group("/recommendations")
			{
				recommendationsGroup.GET("/collaborative", h.Recommendation.Collaborative)
				recommendationsGroup.GET("/content-based", h.Recommendation.ContentBased)
				recommendationsGroup.GET("/hybrid", h.Recommendation.Hybrid)
				recommendationsGroup.GET("/similar-users", h.Recommendation.SimilarUsers)
			}

			walkwaysGroup := protectedAPI.Group("/walkways")
			{
				walkwaysGroup.GET("", h.Walkway.ListWalkways)
				walkwaysGroup.GET("/top-liked", h.Statistics.TopLiked)
				walkwaysGroup.GET("/top-explored", h.Statistics.TopExplored)
				walkwaysGroup.GET("/top", h.Statistics.TopWalkways)
				walkwaysGroup.GET("/:key", h.Walkway.GetWalkway)
				walkwaysGroup.POST("/:key/comments", h.Walkway.AddComment)
			}

			// Endpoint names used by the existing mobile client.
			protectedAPI.GET("/recommendedCollaborativeWalkways", h.Recommendation.Collaborative)
			protectedAPI.GET("/recommendContentBased", h.Recommendation.ContentBased)
			protectedAPI.GET("/recommendHybridCascade", h.Recommendation.Hybrid)
			protectedAPI.GET("/topLikedWalkways", h.Statistics.TopLiked)
			protectedAPI.GET("/topExploredWalkways", h.Statistics.TopExplored)
			protectedAPI.GET("/topWalkways", h.Statistics.TopWalkways)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Route not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "route not found"})
	})
}
