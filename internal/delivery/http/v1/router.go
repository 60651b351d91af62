package v1

import (
	"net/http"

	"go-contact-relay/config"
	_ "go-contact-relay/docs" // registers swagger docs
	"go-contact-relay/internal/delivery/http/middleware"
	"go-contact-relay/internal/domain"
	"go-contact-relay/internal/usecase"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	HealthUC       usecase.HealthUsecase
	SecurityLogger *security.SecurityLogger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	// Public contact form; CORS is scoped to this route
	NewContactHandler(r, ContactRoute{
		Path: cfg.ContactPath,
		CORS: middleware.CORSPolicy{
			AllowedOrigins: cfg.AllowedOrigins,
			DefaultOrigin:  cfg.DefaultOrigin,
			AllowedHeaders: cfg.AllowedHeaders,
		},
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, deps.ContactUC, deps.SecurityLogger)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(telemetry.MetricsHandler()))
	}

	return r
}
