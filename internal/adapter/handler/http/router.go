package http

import (
	"net/http"
	"strings"

	cfg "github.com/sm8ta/cep_cache_microservice/internal/config"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

// NewRouter wires the routes. A nil tokenService leaves /cep open.
func NewRouter(
	config *cfg.HTTP,
	tokenService ports.TokenService,
	cepHandler *CepHandler,
	healthHandler *HealthHandler,
	metricsHandler http.Handler,
) (*Router, error) {
	if config.Env == cfg.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	ginConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")
	ginConfig.AllowHeaders = append(ginConfig.AllowHeaders, "Authorization")

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(ginConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(metricsHandler))

	router.GET("/health", healthHandler.Health)

	cep := router.Group("/cep")
	if tokenService != nil {
		cep.Use(AuthMiddleware(tokenService))
	}
	{
		cep.GET("", cepHandler.GetCepByQuery)
		cep.GET("/:cep", cepHandler.GetCep)
		cep.POST("/:cep", cepHandler.GetCep)
	}

	return &Router{
		Engine: router,
	}, nil
}
