package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/workout-api/docs"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/handlers/middleware"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
)

// RouterConfig reúne o que o router precisa para montar as rotas
type RouterConfig struct {
	Env                string
	BaseURL            string
	CORSAllowedOrigins string
	SwaggerEnabled     bool

	I18n            *i18n.Service
	Athletes        *AthleteHandler
	Categories      *CategoryHandler
	TrainingCenters *TrainingCenterHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas da API
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(cfg.I18n)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		dto.Respond(c, dto.NotFoundErrorResponseI18n(c, "error.route.not_found", map[string]interface{}{
			"Method": c.Request.Method,
			"Path":   c.Request.URL.Path,
		}))
	})

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	athletes := router.Group("/atletas")
	{
		athletes.POST("", cfg.Athletes.CreateAthlete)
		athletes.GET("", cfg.Athletes.ListAthletes)
		athletes.GET("/:id", cfg.Athletes.GetAthlete)
		athletes.PATCH("/:id", cfg.Athletes.UpdateAthlete)
		athletes.DELETE("/:id", cfg.Athletes.DeleteAthlete)
	}

	categories := router.Group("/categorias")
	{
		categories.POST("", cfg.Categories.CreateCategory)
		categories.GET("", cfg.Categories.ListCategories)
		categories.GET("/:id", cfg.Categories.GetCategory)
	}

	trainingCenters := router.Group("/centros_treinamento")
	{
		trainingCenters.POST("", cfg.TrainingCenters.CreateTrainingCenter)
		trainingCenters.GET("", cfg.TrainingCenters.ListTrainingCenters)
		trainingCenters.GET("/:id", cfg.TrainingCenters.GetTrainingCenter)
	}

	return router
}
