package controllers

import (
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ServiceOrderCreateDTO struct {
	Description string                    `json:"description" validate:"required"`
	Status      models.ServiceOrderStatus `json:"status" validate:"omitempty,oneof=open inProgress completed canceled"`
	Estimate    *float64                  `json:"estimate" validate:"required,gte=0"`
	CustomerID  uint                      `json:"customerId" validate:"required"`
}

type ServiceOrderUpdateDTO struct {
	Description *string                    `json:"description" validate:"omitempty,min=1"`
	Status      *models.ServiceOrderStatus `json:"status" validate:"omitempty,oneof=open inProgress completed canceled"`
	Estimate    *float64                   `json:"estimate" validate:"omitempty,gte=0"`
	CustomerID  *uint                      `json:"customerId" validate:"omitempty,gt=0"`
}

// GET /service-orders
func (h *Handlers) GetServiceOrders(c *fiber.Ctx) error {
	where := map[string]any{}
	if customerID, ok, err := queryID(c, "customerId"); err != nil {
		return err
	} else if ok {
		where["customer_id"] = customerID
	}
	orders, err := h.ServiceOrders.List(c.UserContext(), where)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// GET /service-orders/:id
func (h *Handlers) GetServiceOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.ServiceOrders.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "service order")
	}
	return c.JSON(fiber.Map{"serviceOrder": order})
}

// POST /service-orders
func (h *Handlers) CreateServiceOrder(c *fiber.Ctx) error {
	var in ServiceOrderCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if _, err := h.Customers.Get(c.UserContext(), in.CustomerID); err != nil {
		return notFoundOr(err, "customer")
	}

	status := in.Status
	if status == "" {
		status = models.ServiceOrderOpen
	}
	order := models.ServiceOrder{
		Description: in.Description,
		Status:      status,
		Estimate:    *in.Estimate,
		CustomerID:  in.CustomerID,
	}
	if err := h.ServiceOrders.Create(c.UserContext(), &order); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"serviceOrder": order})
}

// PUT /service-orders/:id
func (h *Handlers) UpdateServiceOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in ServiceOrderUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.CustomerID != nil {
		if _, err := h.Customers.Get(c.UserContext(), *in.CustomerID); err != nil {
			return notFoundOr(err, "customer")
		}
	}

	order, err := h.ServiceOrders.Update(c.UserContext(), id, utils.UpdatesFromPtrDTO(&in, nil))
	if err != nil {
		return notFoundOr(err, "service order")
	}
	return c.JSON(fiber.Map{"serviceOrder": order})
}

// DELETE /service-orders/:id
func (h *Handlers) DeleteServiceOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ServiceOrders.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "service order")
	}
	return deleted(c, "service order")
}
