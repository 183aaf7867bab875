package middlewares

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

// Claims is our custom JWT payload (subject=userID, plus email).
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var (
	secretMu  sync.RWMutex
	jwtSecret []byte
	jwtTTL    = 24 * time.Hour
)

// ConfigureJWT sets the HS256 signing secret and token lifetime.
func ConfigureJWT(secret string, ttl time.Duration) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("JWT secret not configured (set JWT_SECRET_KEY or JWT_SECRET)")
	}
	secretMu.Lock()
	defer secretMu.Unlock()
	jwtSecret = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
	return nil
}

func signingKey() ([]byte, time.Duration, error) {
	secretMu.RLock()
	defer secretMu.RUnlock()
	if len(jwtSecret) == 0 {
		return nil, 0, errors.New("JWT secret not configured")
	}
	return jwtSecret, jwtTTL, nil
}

// IsAuthenticatedHeader validates a Bearer token, enforces HS256, and populates
// c.Locals("userID") and c.Locals("email").
func IsAuthenticatedHeader() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret, _, err := signingKey()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "server auth not configured")
		}

		h := c.Get(authHeader)
		if len(h) < len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
			return fiber.NewError(fiber.StatusUnauthorized, "missing/invalid Authorization header")
		}
		raw := strings.TrimSpace(h[len(bearerPrefix):])
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
		}

		claims, err := ParseJWT(raw, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals("userID", claims.Subject)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// ParseJWT verifies an HS256 token and returns its claims.
func ParseJWT(raw string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims Claims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token missing subject")
	}
	return &claims, nil
}

// GenerateJWT signs a new HS256 token for the given user.
func GenerateJWT(userID uint, email string) (string, error) {
	secret, ttl, err := signingKey()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
