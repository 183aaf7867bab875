package controllers

import (
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AddressCreateDTO struct {
	Street       string `json:"street" validate:"required,max=200"`
	Number       string `json:"number" validate:"required,max=20"`
	Complement   string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=50"`
	ZipCode      string `json:"zipCode" validate:"omitempty,min=8,max=20"`
}

type AddressUpdateDTO struct {
	Street       *string `json:"street" validate:"omitempty,min=1,max=200"`
	Number       *string `json:"number" validate:"omitempty,min=1,max=20"`
	Complement   *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,min=1,max=100"`
	City         *string `json:"city" validate:"omitempty,min=1,max=100"`
	State        *string `json:"state" validate:"omitempty,min=1,max=50"`
	ZipCode      *string `json:"zipCode" validate:"omitempty,min=8,max=20"`
}

func addressOwner(a *models.Address) uint { return a.CustomerID }

// customerParam resolves :customerId and makes sure the customer exists.
func (h *Handlers) customerParam(c *fiber.Ctx) (uint, error) {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return 0, err
	}
	if _, err := h.Customers.Get(c.UserContext(), customerID); err != nil {
		return 0, notFoundOr(err, "customer")
	}
	return customerID, nil
}

// GET /customers/:customerId/addresses
func (h *Handlers) GetAddresses(c *fiber.Ctx) error {
	customerID, err := h.customerParam(c)
	if err != nil {
		return err
	}
	addresses, err := h.Addresses.List(c.UserContext(), map[string]any{"customer_id": customerID})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addresses})
}

// POST /customers/:customerId/addresses
func (h *Handlers) CreateAddress(c *fiber.Ctx) error {
	customerID, err := h.customerParam(c)
	if err != nil {
		return err
	}
	var in AddressCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	address := models.Address{
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		CustomerID:   customerID,
	}
	if err := h.Addresses.Create(c.UserContext(), &address); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"address": address})
}

// PUT /customers/:customerId/addresses/:id
func (h *Handlers) UpdateAddress(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in AddressUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if _, err := loadOwned(c.UserContext(), h.Addresses, id, customerID, addressOwner, "address"); err != nil {
		return err
	}

	address, err := h.Addresses.Update(c.UserContext(), id, utils.UpdatesFromPtrDTO(&in, nil))
	if err != nil {
		return notFoundOr(err, "address")
	}
	return c.JSON(fiber.Map{"address": address})
}

// DELETE /customers/:customerId/addresses/:id
func (h *Handlers) DeleteAddress(c *fiber.Ctx) error {
	customerID, err := paramID(c, "customerId")
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := loadOwned(c.UserContext(), h.Addresses, id, customerID, addressOwner, "address"); err != nil {
		return err
	}
	if err := h.Addresses.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "address")
	}
	return deleted(c, "address")
}
