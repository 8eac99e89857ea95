package v1

import (
	"net/http"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/config"
	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/middleware"
	"github.com/Hemasri-atike/Ihire-sub000/internal/delivery/http/response"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InviteUC     domain.InviteUsecase
	CompanyUC    domain.CompanyUsecase
	EmployerUC   domain.EmployerUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token validation is the only unauthenticated invite surface; throttle
	// it hard to slow down token guessing.
	validateRateLimit := middleware.RateLimitMiddleware(
		middleware.TokenRateLimitConfig(deps.Config.RateLimitTokenThreshold, window))

	// Public routes
	NewCompanyHandler(v1, deps.CompanyUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.EmployerUC))
	{
		NewInviteHandler(v1, protected, deps.InviteUC, validateRateLimit)
		NewEmployerHandler(protected)
	}

	return r
}
