package controllers

import (
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CustomerCreateDTO struct {
	Name         string              `json:"name" validate:"required,min=1"`
	Document     string              `json:"document" validate:"omitempty,max=30"`
	DocumentType models.DocumentType `json:"documentType" validate:"omitempty,oneof=cpf rg cnh passaporte cnpj"`
	Phone        string              `json:"phone" validate:"omitempty,max=30"`
	Email        string              `json:"email" validate:"omitempty,email"`
}

type CustomerUpdateDTO struct {
	Name         *string              `json:"name" validate:"omitempty,min=1"`
	Document     *string              `json:"document" validate:"omitempty,max=30"`
	DocumentType *models.DocumentType `json:"documentType" validate:"omitempty,oneof=cpf rg cnh passaporte cnpj"`
	Phone        *string              `json:"phone" validate:"omitempty,max=30"`
	Email        *string              `json:"email" validate:"omitempty,email"`
}

// CustomerPatchDTO carries the id in the body (PATCH /customers).
type CustomerPatchDTO struct {
	ID uint `json:"id" validate:"required"`
	CustomerUpdateDTO
}

// GET /customers
func (h *Handlers) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.Customers.List(c.UserContext(), nil)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customers})
}

// GET /customers/:id
func (h *Handlers) GetCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.Customers.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "customer")
	}
	return c.JSON(fiber.Map{"customer": customer})
}

// POST /customers
func (h *Handlers) CreateCustomer(c *fiber.Ctx) error {
	var in CustomerCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	customer := models.Customer{
		Name:         in.Name,
		Document:     in.Document,
		DocumentType: in.DocumentType,
		Phone:        in.Phone,
		Email:        in.Email,
	}
	if err := h.Customers.Create(c.UserContext(), &customer); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"customer": customer})
}

// PUT /customers/:id
func (h *Handlers) UpdateCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in CustomerUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	return h.applyCustomerUpdate(c, id, &in)
}

// PATCH /customers
func (h *Handlers) PatchCustomer(c *fiber.Ctx) error {
	var in CustomerPatchDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	return h.applyCustomerUpdate(c, in.ID, &in.CustomerUpdateDTO)
}

func (h *Handlers) applyCustomerUpdate(c *fiber.Ctx, id uint, in *CustomerUpdateDTO) error {
	customer, err := h.Customers.Update(c.UserContext(), id, utils.UpdatesFromPtrDTO(in, nil))
	if err != nil {
		return notFoundOr(err, "customer")
	}
	return c.JSON(fiber.Map{"customer": customer})
}

// DELETE /customers/:id
func (h *Handlers) DeleteCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Customers.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "customer")
	}
	return deleted(c, "customer")
}
