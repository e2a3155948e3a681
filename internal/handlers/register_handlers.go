package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/family_finance_tracker/cmd/docs"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services, posthogClient)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerAuthRoutes sets up the public, rate limited authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	authLimiter, err := middleware.NewMemoryRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("invalid AUTH_RATE_LIMIT %q: %w", cfg.AuthRateLimit, err)
	}

	auth := r.Group("/api/v1/auth", middleware.RateLimit(authLimiter))
	{
		h := newAuthHandler(services.User, services.Token)
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)

		g := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
		auth.GET("/google/login-url", g.loginURL)
		auth.POST("/google/exchange-code", g.exchangeCode)
	}
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to
// the per-resource registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.IdentityMiddleware(services.Identity),
		middleware.PosthogMiddleware(posthogClient),
		middleware.ValidatePathIDs(),
	)

	v1.POST("/auth/logout", newAuthHandler(services.User, services.Token).logout)
	registerUserRoutes(v1, services.User, services.Team)
	registerTeamRoutes(v1, services.Team)
	registerAccountRoutes(v1, services.Account, services.Currency)
	registerTransactionRoutes(v1, services.Transaction, services.Account, services.Category, services.Currency)
	registerCategoryRoutes(v1, services.Category, services.Account, services.Currency)
	registerDashboardRoutes(v1, services.TeamLedger)
	registerCurrencyRoutes(v1, services.Currency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// identityOrAbort fetches the identity stored by IdentityMiddleware, writing
// 401 when it is missing.
func identityOrAbort(c *gin.Context) (*domain.Identity, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return identity, true
}
