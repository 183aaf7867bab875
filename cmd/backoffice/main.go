package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repairdesk-backend/backoffice"
	"repairdesk-backend/cache"
	"repairdesk-backend/client"
	"repairdesk-backend/config"
	"repairdesk-backend/logging"
	"repairdesk-backend/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "accessToken"

type loginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6" normalize:"-"`
}

func main() {
	cfg, err := config.LoadBackoffice()
	log := logging.New(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	api := client.New(client.Config{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout})
	if err := api.Ping(); err != nil {
		log.WithError(err).Warn("API not reachable yet")
	}

	// ---- Optional session cache
	var sessions middlewares.SessionCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("could not connect to redis")
		}
		defer rdb.Close()
		sessions = cache.NewSessions(rdb, "backoffice:session:")
	}

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.NewErrorHandler(log)})
	metrics := middlewares.NewMetrics("repairdesk_backoffice")

	app.Use(recover.New())
	app.Use(middlewares.RequestLogger(log))
	app.Use(metrics.Middleware())

	// ---- Public
	app.Get("/metrics", metrics.Handler())
	app.Get(cfg.LoginPath, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "login required"})
	})
	app.Post(cfg.LoginPath, func(c *fiber.Ctx) error {
		var in loginDTO
		if err := middlewares.BindAndValidate(c, &in); err != nil {
			return err
		}
		token, err := api.Login(in.Email, in.Password)
		if err != nil {
			if client.IsStatus(err, fiber.StatusUnauthorized) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
			}
			log.WithError(err).Error("login request failed")
			return fiber.NewError(fiber.StatusBadGateway, "api unavailable")
		}
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    token,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(fiber.Map{"message": "success"})
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		if token := c.Cookies(sessionCookie); token != "" && sessions != nil {
			_ = sessions.Forget(c.UserContext(), token)
		}
		c.ClearCookie(sessionCookie)
		return c.Redirect(cfg.LoginPath, fiber.StatusSeeOther)
	})

	// ---- Gated
	app.Use(middlewares.SessionGate(middlewares.SessionGateConfig{
		Validator:  api,
		Cache:      sessions,
		CacheTTL:   cfg.SessionCacheTTL,
		LoginPath:  cfg.LoginPath,
		CookieName: sessionCookie,
		Log:        log,
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/customers")
	})
	backoffice.NewViews(api, log).Register(app.Group("/admin"))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.WithFields(logrus.Fields{"port": cfg.Port, "api": cfg.APIURL}).Info("back office starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
