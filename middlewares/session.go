package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultSessionCookie = "accessToken"
	defaultLoginPath     = "/login"
	sessionTokenKey      = "accessToken"
)

// SessionValidator asks the remote authority whether a token is still valid.
// A rejection must be reported as an error carrying the authority's status
// (see statusError); any other error is treated as the authority being unreachable.
type SessionValidator interface {
	ValidateSession(token string) error
}

// statusError is implemented by errors that carry a non-OK answer, e.g. *client.APIError.
type statusError interface {
	error
	StatusCode() int
}

// SessionCache remembers tokens that were recently validated.
type SessionCache interface {
	Valid(ctx context.Context, token string) (bool, error)
	Remember(ctx context.Context, token string, ttl time.Duration) error
	Forget(ctx context.Context, token string) error
}

type SessionGateConfig struct {
	Validator  SessionValidator
	Cache      SessionCache // optional
	CacheTTL   time.Duration
	LoginPath  string
	CookieName string
	Log        *logrus.Logger
}

// SessionGate redirects requests without a valid session cookie to the login
// screen. Tokens are checked against cfg.Validator; a rejected token has its
// cookie removed before the redirect.
func SessionGate(cfg SessionGateConfig) fiber.Handler {
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaultLoginPath
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultSessionCookie
	}

	return func(c *fiber.Ctx) error {
		token := c.Cookies(cfg.CookieName)
		if token == "" {
			return c.Redirect(cfg.LoginPath, fiber.StatusTemporaryRedirect)
		}

		ctx := c.UserContext()
		if cfg.Cache != nil {
			ok, err := cfg.Cache.Valid(ctx, token)
			if err != nil && cfg.Log != nil {
				cfg.Log.WithError(err).Warn("session cache lookup failed")
			}
			if ok {
				c.Locals(sessionTokenKey, token)
				return c.Next()
			}
		}

		if err := cfg.Validator.ValidateSession(token); err != nil {
			var answered statusError
			if !errors.As(err, &answered) {
				// No answer from the authority: keep the cookie, the session may still be good.
				if cfg.Log != nil {
					cfg.Log.WithError(err).WithField("path", c.Path()).Warn("session check failed")
				}
				return fiber.NewError(fiber.StatusBadGateway, "session check unavailable")
			}
			if cfg.Log != nil {
				cfg.Log.WithError(err).WithFields(logrus.Fields{
					"path":   c.Path(),
					"status": answered.StatusCode(),
				}).Info("session rejected")
			}
			if cfg.Cache != nil {
				_ = cfg.Cache.Forget(ctx, token)
			}
			c.ClearCookie(cfg.CookieName)
			return c.Redirect(cfg.LoginPath, fiber.StatusTemporaryRedirect)
		}

		if cfg.Cache != nil && cfg.CacheTTL > 0 {
			if err := cfg.Cache.Remember(ctx, token, cfg.CacheTTL); err != nil && cfg.Log != nil {
				cfg.Log.WithError(err).Warn("session cache store failed")
			}
		}
		c.Locals(sessionTokenKey, token)
		return c.Next()
	}
}

// SessionToken returns the token accepted by SessionGate for this request.
func SessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(sessionTokenKey).(string)
	return token
}
