package controllers

import (
	"context"

	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ServiceOrderItemCreateDTO struct {
	Description    string                        `json:"description" validate:"required"`
	Status         models.ServiceOrderItemStatus `json:"status" validate:"omitempty,oneof=pending executing completed"`
	EquipmentID    uint                          `json:"equipmentId" validate:"required"`
	ServiceOrderID uint                          `json:"serviceOrderId" validate:"required"`
}

type ServiceOrderItemUpdateDTO struct {
	Description *string                        `json:"description" validate:"omitempty,min=1"`
	Status      *models.ServiceOrderItemStatus `json:"status" validate:"omitempty,oneof=pending executing completed"`
	EquipmentID *uint                          `json:"equipmentId" validate:"omitempty,gt=0"`
}

// checkItemEquipment makes sure the equipment exists and belongs to the
// customer the service order was opened for.
func (h *Handlers) checkItemEquipment(ctx context.Context, serviceOrderID, equipmentID uint) error {
	order, err := h.ServiceOrders.Get(ctx, serviceOrderID)
	if err != nil {
		return notFoundOr(err, "service order")
	}
	equipment, err := h.Equipments.Get(ctx, equipmentID)
	if err != nil {
		return notFoundOr(err, "equipment")
	}
	if equipment.CustomerID != order.CustomerID {
		return fiber.NewError(fiber.StatusBadRequest, "equipment does not belong to the service order's customer")
	}
	return nil
}

// GET /service-order-item
func (h *Handlers) GetServiceOrderItems(c *fiber.Ctx) error {
	where := map[string]any{}
	if orderID, ok, err := queryID(c, "serviceOrderId"); err != nil {
		return err
	} else if ok {
		where["service_order_id"] = orderID
	}
	items, err := h.ServiceOrderItems.List(c.UserContext(), where)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// POST /service-order-item
func (h *Handlers) CreateServiceOrderItem(c *fiber.Ctx) error {
	var in ServiceOrderItemCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.checkItemEquipment(c.UserContext(), in.ServiceOrderID, in.EquipmentID); err != nil {
		return err
	}

	status := in.Status
	if status == "" {
		status = models.ItemPending
	}
	item := models.ServiceOrderItem{
		Description:    in.Description,
		Status:         status,
		EquipmentID:    in.EquipmentID,
		ServiceOrderID: in.ServiceOrderID,
	}
	if err := h.ServiceOrderItems.Create(c.UserContext(), &item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"serviceOrderItem": item})
}

// PUT /service-order-item/:id
func (h *Handlers) UpdateServiceOrderItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in ServiceOrderItemUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	current, err := h.ServiceOrderItems.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "service order item")
	}
	if in.EquipmentID != nil && *in.EquipmentID != current.EquipmentID {
		if err := h.checkItemEquipment(c.UserContext(), current.ServiceOrderID, *in.EquipmentID); err != nil {
			return err
		}
	}

	item, err := h.ServiceOrderItems.Update(c.UserContext(), id, utils.UpdatesFromPtrDTO(&in, nil))
	if err != nil {
		return notFoundOr(err, "service order item")
	}
	return c.JSON(fiber.Map{"serviceOrderItem": item})
}

// DELETE /service-order-item/:id
func (h *Handlers) DeleteServiceOrderItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ServiceOrderItems.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "service order item")
	}
	return deleted(c, "service order item")
}
