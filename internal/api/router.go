package api

import (
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/api/handlers"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter assembles the gin engine: recovery, request ids, access
// logging and permissive CORS, then the service routes. The root path
// serves the bundled search page.
func NewRouter(
	searchHandler *handlers.SearchHandler,
	healthHandler *handlers.HealthHandler,
	logger *logrus.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Default())

	router.StaticFile("/", "./web/index.html")

	router.POST("/search", searchHandler.HandleSearch)
	router.POST("/api/search", searchHandler.HandleAPISearch)
	router.GET("/test", healthHandler.HandleTest)
	router.GET("/api/health", healthHandler.HandleHealth)

	return router
}
