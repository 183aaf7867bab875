package controllers

import (
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type BillCreateDTO struct {
	Amount         float64              `json:"amount" validate:"required,gte=0.01"`
	PaymentMethod  models.PaymentMethod `json:"paymentMethod" validate:"required,oneof=cash creditCard debitCard pix boleto"`
	DueDate        string               `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status         models.BillStatus    `json:"status" validate:"required,oneof=pending paid overdue"`
	ServiceOrderID uint                 `json:"serviceOrderId" validate:"required"`
}

type BillUpdateDTO struct {
	Amount        *float64              `json:"amount" validate:"omitempty,gte=0.01"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cash creditCard debitCard pix boleto"`
	DueDate       *string               `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status        *models.BillStatus    `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

func parseDueDate(s string) (models.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fiber.NewError(fiber.StatusBadRequest, "invalid dueDate")
	}
	return d, nil
}

func (h *Handlers) billFilter(c *fiber.Ctx) (map[string]any, error) {
	where := map[string]any{}
	if orderID, ok, err := queryID(c, "serviceOrderId"); err != nil {
		return nil, err
	} else if ok {
		where["service_order_id"] = orderID
	}
	if raw := c.Query("status"); raw != "" {
		status := models.BillStatus(raw)
		if !status.Valid() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid status filter")
		}
		where["status"] = status
	}
	return where, nil
}

// GET /bills
func (h *Handlers) GetBills(c *fiber.Ctx) error {
	where, err := h.billFilter(c)
	if err != nil {
		return err
	}
	bills, err := h.Bills.List(c.UserContext(), where)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bills})
}

// GET /bills/summary
func (h *Handlers) GetBillSummary(c *fiber.Ctx) error {
	where, err := h.billFilter(c)
	if err != nil {
		return err
	}
	bills, err := h.Bills.List(c.UserContext(), where)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"summary": models.SummarizeBills(bills)})
}

// GET /bills/:id
func (h *Handlers) GetBill(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	bill, err := h.Bills.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, "bill")
	}
	return c.JSON(fiber.Map{"bill": bill})
}

// POST /bills
func (h *Handlers) CreateBill(c *fiber.Ctx) error {
	var in BillCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	due, err := parseDueDate(in.DueDate)
	if err != nil {
		return err
	}
	if _, err := h.ServiceOrders.Get(c.UserContext(), in.ServiceOrderID); err != nil {
		return notFoundOr(err, "service order")
	}

	bill := models.Bill{
		Amount:         in.Amount,
		PaymentMethod:  in.PaymentMethod,
		DueDate:        due,
		Status:         in.Status,
		ServiceOrderID: in.ServiceOrderID,
	}
	if err := h.Bills.Create(c.UserContext(), &bill); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bill": bill})
}

// PUT /bills/:id
func (h *Handlers) UpdateBill(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in BillUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&in, map[string]string{"DueDate": "-"})
	if in.DueDate != nil {
		due, err := parseDueDate(*in.DueDate)
		if err != nil {
			return err
		}
		updates["DueDate"] = due
	}

	bill, err := h.Bills.Update(c.UserContext(), id, updates)
	if err != nil {
		return notFoundOr(err, "bill")
	}
	return c.JSON(fiber.Map{"bill": bill})
}

// DELETE /bills/:id and /bill/:id
func (h *Handlers) DeleteBill(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Bills.Delete(c.UserContext(), id); err != nil {
		return notFoundOr(err, "bill")
	}
	return deleted(c, "bill")
}
