package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/weiyuc/charityevents/config"
	"github.com/weiyuc/charityevents/internal/handlers"
	"github.com/weiyuc/charityevents/internal/helpers"
	"github.com/weiyuc/charityevents/internal/middleware"
	"github.com/weiyuc/charityevents/internal/repository"
	"go.uber.org/zap"
)

func Start(logger *zap.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	store := repository.NewEventRepository(db)
	eventHandler := handlers.NewEventHandler(store, logger)

	r := NewRouter(eventHandler, logger, cfg.CORSOrigin)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	logger.Info("api listening", zap.String("port", port))
	return r.Run(":" + port)
}

// NewRouter builds the gin engine with the middleware chain and the three
// public routes mounted under /api.
func NewRouter(eventHandler *handlers.EventHandler, logger *zap.Logger, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(corsOrigin))

	api := r.Group("/api")
	{
		api.GET("/home", eventHandler.Home)

		events := api.Group("/events")
		{
			events.GET("/search", eventHandler.Search)
			events.GET("/:eventId", eventHandler.Detail)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("%s %s not found", c.Request.Method, c.Request.URL.Path))
	})

	return r
}
