package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"repairdesk-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxIdempotencyKeyLen = 128

// Idempotency processes Idempotency-Key for mutating HTTP methods. The first
// completed response for a key is stored and replayed for identical retries.
// It uses its own short transactions, independent of the request transaction.
func Idempotency(db *gorm.DB, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get("Idempotency-Key"))
		if key == "" {
			return c.Next()
		}
		if len(key) > maxIdempotencyKeyLen {
			return fiber.NewError(fiber.StatusBadRequest, "Idempotency-Key too long")
		}

		userID, _ := c.Locals("userID").(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "auth context missing")
		}

		path := c.OriginalURL() // includes query string
		reqHash := requestHash(method, path, c.Body(), userID)

		// ---- Phase 1: read or create the "pending" record
		var existing models.IdempotencyKey
		err := db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where(byKey(key)).First(&existing).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "idempotency lookup failed")
				}
				rec := models.IdempotencyKey{
					Key:         key,
					RequestHash: reqHash,
					Method:      method,
					Path:        path,
					UserID:      userID,
				}
				res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
				switch {
				case res.Error != nil:
					return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
				case res.RowsAffected == 0:
					// lost the race for this key: read the winner
					if err := tx.Where(byKey(key)).First(&existing).Error; err != nil {
						return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
					}
				default:
					existing = rec
				}
			}
			if existing.RequestHash != reqHash {
				return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
			}
			return nil
		})
		if err != nil {
			return err
		}

		if existing.ResponseStatus != 0 {
			c.Set("Idempotent-Replayed", "true")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(existing.ResponseStatus).Send(existing.ResponseBody)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// ---- Phase 2: store the response (best effort)
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			return nil
		}
		resp := c.Response().Body()
		blob := make([]byte, len(resp))
		copy(blob, resp)
		now := time.Now().UTC()

		if err := db.WithContext(c.UserContext()).Model(&models.IdempotencyKey{}).
			Where(byKey(key)).
			Updates(map[string]any{
				"response_status": status,
				"response_body":   blob,
				"completed_at":    &now,
			}).Error; err != nil {
			log.WithError(err).WithField("key", key).Warn("could not store idempotent response")
		}
		return nil
	}
}

// byKey matches the key column with dialect quoting (KEY is reserved in MySQL).
func byKey(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

// requestHash is sha256 of method|path|body|user.
func requestHash(method, path string, body []byte, userID string) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{'\n'})
	h.Write([]byte(path))
	h.Write([]byte{'\n'})
	h.Write(body)
	h.Write([]byte{'\n'})
	h.Write([]byte(userID))
	return hex.EncodeToString(h.Sum(nil))
}
