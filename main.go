package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	database "github.com/MindsetMakersAcademy/MindsetBackend/internals/databases"
	postRepository "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/blogs/posts/repository"
	courseRepository "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/repository"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/scheduler"
	courseService "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/catalog/courses/service"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
	middlewares "github.com/MindsetMakersAcademy/MindsetBackend/internals/middlewares"
	routes "github.com/MindsetMakersAcademy/MindsetBackend/internals/route"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/seeds"
)

func main() {
	cfg := configs.Load()
	logger := configs.SetupLogger(cfg.LogLevel, cfg.IsDevelopment())

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database unavailable")
	}
	database.TunePool(db)

	// `migrate` / `seed` run once and exit
	if len(os.Args) > 1 {
		runCommand(os.Args[1], db, cfg, logger)
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB, err := db.DB(); err == nil {
		reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, "mindset"))
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, logger, middlewares.NewHTTPMetrics(reg))
	database.WarmUpQueries(db)

	// ⏱ catalog gauges after DB is ready
	gauges, err := scheduler.NewCatalogGauges(reg, catalogSources(db)...)
	if err != nil {
		logger.Fatal().Err(err).Msg("register catalog gauges")
	}
	gaugeCron, err := gauges.Start(scheduler.DefaultSpec)
	if err != nil {
		logger.Fatal().Err(err).Msg("schedule catalog gauges")
	}

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg, reg)

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	<-gaugeCron.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := database.Close(db); err != nil {
		logger.Error().Err(err).Msg("database close")
	}
}

func runCommand(name string, db *gorm.DB, cfg configs.Config, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer func() { _ = database.Close(db) }()

	var err error
	switch name {
	case "migrate":
		err = database.Migrate(ctx, db)
	case "seed":
		err = seeds.RunAllSeeds(ctx, db, cfg)
	default:
		logger.Fatal().Str("command", name).Msg("unknown command, expected migrate or seed")
	}
	if err != nil {
		logger.Fatal().Err(err).Str("command", name).Msg("command failed")
	}
	logger.Info().Str("command", name).Msg("done")
}

func catalogSources(db *gorm.DB) []scheduler.Source {
	courses := courseService.NewCourseService(courseRepository.NewCourseRepository(db))
	posts := postRepository.NewPostRepository(db)
	return []scheduler.Source{
		{
			Name:  "mindset_courses_upcoming",
			Help:  "Courses that have not started yet.",
			Count: courses.CountUpcoming,
		},
		{
			Name:  "mindset_courses_past",
			Help:  "Courses that have already ended.",
			Count: courses.CountPast,
		},
		{
			Name:  "mindset_blog_posts_published",
			Help:  "Blog posts with status published.",
			Count: posts.CountPublished,
		},
	}
}
