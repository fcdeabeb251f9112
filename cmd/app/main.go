package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pinpoint/cmd/fx/auth_fx"
	"pinpoint/cmd/fx/controllers_fx"
	"pinpoint/cmd/fx/db_fx"
	"pinpoint/cmd/fx/events_fx"
	"pinpoint/cmd/fx/firms_fx"
	"pinpoint/cmd/fx/geocode_fx"
	"pinpoint/cmd/fx/tickets_fx"
	"pinpoint/cmd/fx/users_fx"
	"pinpoint/internal/api/controllers"
	"pinpoint/internal/infra"
	"pinpoint/pkg/logging"
	"pinpoint/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}
	logging.Setup()

	app := fx.New(
		db_fx.Module,
		geocode_fx.Module,
		events_fx.Module,
		firms_fx.Module,
		users_fx.Module,
		tickets_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Info().Str("port", port).Msg("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	firmsController *controllers.FirmsController,
	ticketsController *controllers.SupportTicketsController,
	usersController *controllers.UsersController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, firmsController, ticketsController, usersController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	firmsController *controllers.FirmsController,
	ticketsController *controllers.SupportTicketsController,
	usersController *controllers.UsersController) {

	r.POST("/admin/login", authController.Login)

	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))

	firms := admin.Group("/firms")
	firms.GET("", firmsController.List)
	firms.POST("", firmsController.Create)
	firms.GET("/:id", firmsController.Show)
	firms.PATCH("/:id", firmsController.Update)
	firms.DELETE("/:id", firmsController.Destroy)
	firms.POST("/:id/pin_balances", firmsController.CreatePinBalance)

	admin.GET("/support_tickets.csv", ticketsController.CSV)
	tickets := admin.Group("/support_tickets")
	tickets.GET("", ticketsController.List)
	tickets.GET("/:id", ticketsController.Show)
	tickets.PATCH("/:id", ticketsController.Update)
	tickets.DELETE("/:id", ticketsController.Destroy)

	admin.GET("/users.csv", usersController.CSV)
	users := admin.Group("/users")
	users.GET("", usersController.List)
	users.GET("/:id", usersController.Show)
	users.PATCH("/:id", usersController.Update)
	users.DELETE("/:id", usersController.Destroy)
}
