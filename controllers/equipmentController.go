package controllers

import (
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type EquipmentCreateDTO struct {
	DeviceType   models.DeviceType `json:"deviceType" validate:"required,oneof=notebook smartphone tablet desktop other"`
	Brand        string            `json:"brand" validate:"omitempty,max=100"`
	Model        string            `json:"model" validate:"omitempty,max=100"`
	SerialNumber string            `json:"serialNumber" validate:"omitempty,max=100"`
}

type EquipmentUpdateDTO struct {
	DeviceType   *models.DeviceType `json:"deviceType" validate:"omitempty,oneof=notebook smartphone tablet desktop other"`
	Brand        *string            `json:"brand" validate:"omitempty,max=100"`
	Model        *string            `json:"model" validate:"omitempty,max=100"`
	SerialNumber *string            `json:"serialNumber" validate:"omitempty,max=100"`
}

func equipmentOwner(e *models.Equipment) uint { return e.CustomerID }

// GET /customers/:customerId/equipments
func (h *Handlers) GetEquipments(c *fiber.Ctx) error {
	customerID, err := h.customerParam(c)
	if err != nil {
		return err
	}
	equipments, err := h.Equipments.List(c.UserContext(), map[string]any{"customer_id": customerID})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": equipments})
}

// POST /customers/:customerId/equipments
func (h *Handlers) CreateEquipment(c *fiber.Ctx) error {
	customerID, err := h.customerParam(c)
	if err != nil {
		return err
	}
	var in EquipmentCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	equipment := models.Equipment{
		DeviceType:   in.DeviceType,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		CustomerID:   customerID,
	}
	if err := h.Equipments.Create(c.UserContext(), &equipment); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"equipment": equipment})
}

// PUT /customers/:customerId/equipments/:id
func (h *Handlers) UpdateEquipment(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in EquipmentUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if _, err := loadOwned(c.UserContext(), h.Equipments, id, customerID, equipmentOwner, "equipment"); err != nil {
		return err
	}

	equipment, err := h.Equipments.Update(c.UserContext(), id, utils.UpdatesFromPtrDTO(&in, nil))
	if err != nil {
		return notFoundOr(err, "equipment")
	}
	return c.JSON(fiber.Map{"equipment": equipment})
}

// DELETE /customers/:customerId/equipments/:id
func (h *Handlers) DeleteEquipment(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := loadOwned(c.UserContext(), h.Equipments, id, customerID, equipmentOwner, "equipment"); err != nil {
		return err
	}
	if err := h.Equipments.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "equipment")
	}
	return deleted(c, "equipment")
}
