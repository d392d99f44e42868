package handlers

import (
	"family_expenses/internal/config"
	"family_expenses/internal/logger"
	"family_expenses/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	cfg      *config.Config
	log      *logger.Logger
	feed     *feedHub
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		cfg:      cfg,
		log:      log,
		feed:     newFeedHub(),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The route set mirrors what the old Express server exposed, so the
// existing web client keeps working unchanged.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Session/auth endpoints manage the cookie themselves.
	router.GET("/authtoken", h.getAuthToken)
	router.POST("/auth", h.postAuth)
	router.GET("/logout", h.logout)
	router.GET("/user", h.getUser)

	// Data endpoints sit behind the session gate.
	gated := router.Group("/", h.sessionGate)
	{
		gated.POST("/data", h.fetchData)
		gated.POST("/adddata", h.addData)
		gated.POST("/editdata", h.editData)
		gated.POST("/deldata", h.delData)
		gated.GET("/categories", h.getCategories)

		// Live feed of record mutations, upgraded on the same port.
		gated.GET("/ws", h.wsConnect)
	}

	return router
}
