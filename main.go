package main

import (
	"os"
	"os/signal"
	"syscall"

	"repairdesk-backend/config"
	"repairdesk-backend/controllers"
	"repairdesk-backend/database"
	"repairdesk-backend/jobs"
	"repairdesk-backend/logging"
	"repairdesk-backend/middlewares"
	"repairdesk-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	log := logging.New(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if err := middlewares.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL); err != nil {
		log.WithError(err).Fatal("invalid JWT configuration")
	}

	// ---- Database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("could not connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("could not migrate database")
	}

	// ---- Background jobs
	if cfg.OverdueSchedule != "" {
		scheduler, err := jobs.Schedule(cfg.OverdueSchedule, jobs.NewOverdueBills(db, log), log)
		if err != nil {
			log.WithError(err).Fatal("could not schedule overdue bills job")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.NewErrorHandler(log),
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})
	metrics := middlewares.NewMetrics("repairdesk_api")

	app.Use(recover.New())
	app.Use(middlewares.RequestLogger(log))
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	// ---- Routes
	app.Get("/metrics", metrics.Handler())
	routes.Register(app, controllers.New(db),
		middlewares.Idempotency(db, log),
		middlewares.RequestTx(db, log),
	)

	// ---- Start
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.WithField("port", cfg.Port).Info("API server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
