package controllers

import (
	"context"
	"errors"
	"fmt"

	"repairdesk-backend/database"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handlers carries the repositories the HTTP handlers work on.
type Handlers struct {
	Users             database.Repository[models.User]
	Customers         database.Repository[models.Customer]
	Addresses         database.Repository[models.Address]
	Equipments        database.Repository[models.Equipment]
	ServiceOrders     database.Repository[models.ServiceOrder]
	ServiceOrderItems database.Repository[models.ServiceOrderItem]
	Bills             database.Repository[models.Bill]
}

// New builds GORM-backed handlers.
func New(db *gorm.DB) *Handlers {
	return &Handlers{
		Users:             database.NewRepository[models.User](db),
		Customers:         database.NewRepository[models.Customer](db),
		Addresses:         database.NewRepository[models.Address](db),
		Equipments:        database.NewRepository[models.Equipment](db),
		ServiceOrders:     database.NewRepository[models.ServiceOrder](db, "Items"),
		ServiceOrderItems: database.NewRepository[models.ServiceOrderItem](db),
		Bills:             database.NewRepository[models.Bill](db),
	}
}

func Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello World"})
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, ok := utils.ParseID(c.Params(name))
	if !ok {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s in path", name))
	}
	return id, nil
}

// queryID reads an optional numeric filter from the query string.
func queryID(c *fiber.Ctx, name string) (uint, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	id, ok := utils.ParseID(raw)
	if !ok {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s filter", name))
	}
	return id, true, nil
}

// notFoundOr turns database.ErrNotFound into a 404 naming the entity.
func notFoundOr(err error, what string) error {
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return err
}

// loadOwned fetches a child record and hides it when it belongs to another parent.
func loadOwned[T any](ctx context.Context, repo database.Repository[T], id, parentID uint, owner func(*T) uint, what string) (*T, error) {
	v, err := repo.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, what)
	}
	if owner(v) != parentID {
		return nil, fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return v, nil
}

func deleted(c *fiber.Ctx, what string) error {
	return c.JSON(fiber.Map{"message": what + " deleted"})
}
