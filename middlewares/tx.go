package middlewares

import (
	"repairdesk-backend/database"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RequestTx opens a per-request DB transaction and exposes it to repositories
// through the request's user context.
// Order: run AFTER IsAuthenticatedHeader() and AFTER Idempotency() (so idempotency
// records aren't tied to the handler TX).
func RequestTx(db *gorm.DB, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r)
			}
			if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.WithError(e).Error("tx commit failed")
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		c.SetUserContext(database.WithTx(c.UserContext(), tx))

		err = c.Next()
		return err
	}
}
