package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	authMiddleware "github.com/MindsetMakersAcademy/MindsetBackend/internals/middlewares/auth"
	routeDetails "github.com/MindsetMakersAcademy/MindsetBackend/internals/route/details"
)

const APIPrefix = "/api/v1"

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, gatherer prometheus.Gatherer) {
	startTime = time.Now()

	BaseRoutes(app, db, gatherer)

	adminOnly := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: cfg.SecretKey})
	api := app.Group(APIPrefix)

	log.Info().Msg("mounting catalog routes")
	routeDetails.CatalogRoutes(api, adminOnly, db)

	log.Info().Msg("mounting user routes")
	routeDetails.UserRoutes(api, adminOnly, db)

	log.Info().Msg("mounting admin routes")
	routeDetails.AdminRoutes(api, adminOnly, db, cfg)

	log.Info().Msg("mounting blog routes")
	routeDetails.BlogRoutes(api, adminOnly, db)
}
