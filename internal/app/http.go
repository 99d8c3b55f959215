package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-service/internal/account"
	"travel-service/internal/auth/credentials"
	authhandler "travel-service/internal/auth/handler"
	"travel-service/internal/auth/provider"
	"travel-service/internal/auth/resolver"
	"travel-service/internal/auth/service"
	"travel-service/internal/config"
	"travel-service/internal/logger"
	"travel-service/internal/middleware"
	"travel-service/internal/product"
	"travel-service/internal/token"
	"travel-service/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.UsesDevSecret() {
		logger.Warn("JWT_SECRET not set, using development signing key", nil)
	}

	tokens, err := token.NewCodec(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	if err != nil {
		return nil, nil, err
	}

	var accounts account.Repository = account.NewSQLRepository(infra.DB.DB)
	if infra.Redis != nil {
		accounts = account.NewCachedRepository(accounts, infra.Redis.Client)
	}

	hasher := credentials.NewHasher(cfg.BcryptCost)
	providers := provider.NewClient(cfg.ProviderTimeout())
	identityResolver := resolver.NewStoreResolver(accounts)
	authService := service.New(accounts, hasher, tokens, providers, identityResolver)
	authenticator := middleware.NewAuthenticator(tokens, accounts)

	products := product.NewSQLRepository(infra.DB.DB)
	users := user.NewService(accounts)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(authenticator.Authenticate())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authhandler.NewHandler(authService).RegisterRoutes(router)

	protected := router.Group("/api")
	protected.Use(middleware.RequirePrincipal())
	user.NewHandler(users).RegisterRoutes(protected)
	product.NewHandler(products).RegisterRoutes(protected)

	cleanup := func() error {
		if infra.Redis != nil {
			if err := infra.Redis.Close(); err != nil {
				logger.Warn("redis close failed", map[string]any{"error": err.Error()})
			}
		}
		return infra.DB.Close()
	}

	return router, cleanup, nil
}
