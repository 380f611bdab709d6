package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	activityfx "quickmap/cmd/fx/activity_fx"
	configfx "quickmap/cmd/fx/config_fx"
	controllersfx "quickmap/cmd/fx/controllers_fx"
	dbfx "quickmap/cmd/fx/db_fx"
	eventsfx "quickmap/cmd/fx/events_fx"
	geocodefx "quickmap/cmd/fx/geocode_fx"
	"quickmap/internal/api/controllers"
	"quickmap/internal/infra"
	"quickmap/pkg/logger"
	"quickmap/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(logger.NewLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		configfx.Module,
		dbfx.Module,
		geocodefx.Module,
		activityfx.Module,
		eventsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	activitiesController *controllers.ActivitiesController,
	eventsController *controllers.EventsController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, activitiesController, eventsController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	activitiesController *controllers.ActivitiesController,
	eventsController *controllers.EventsController,
	authController *controllers.AuthController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	activities := api.Group("/activities")
	activities.GET("", activitiesController.ListActivities)
	activities.GET("/:id", activitiesController.GetActivityByID)
	activities.GET("/:id/related", activitiesController.GetRelatedActivities)
	activities.POST("", activitiesController.CreateActivity)

	seatgeek := api.Group("/seatgeek")
	seatgeek.GET("/events", eventsController.ListNearbyEvents)

	auth := api.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/register", authController.Register)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, log *zap.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server", zap.String("port", cfg.Port))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
