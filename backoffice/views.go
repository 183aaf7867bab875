package backoffice

import (
	"encoding/json"
	"errors"
	"net/url"

	"repairdesk-backend/client"
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"
	"repairdesk-backend/store"
	"repairdesk-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Views serves the screens as JSON under a router protected by SessionGate.
type Views struct {
	api *client.Client
	log *logrus.Logger
}

func NewViews(api *client.Client, log *logrus.Logger) *Views {
	return &Views{api: api, log: log}
}

// Register mounts the views on r (usually the /admin group).
func (v *Views) Register(r fiber.Router) {
	r.Get("/customers", v.customers)
	r.Post("/customers", v.saveCustomer)
	r.Put("/customers/:id", v.saveCustomer)
	r.Delete("/customers/:id", v.deleteCustomer)
	r.Get("/customers/:id", v.customerDetail)

	r.Post("/customers/:customerId/addresses", v.saveAddress)
	r.Put("/customers/:customerId/addresses/:id", v.saveAddress)
	r.Delete("/customers/:customerId/addresses/:id", v.deleteAddress)
	r.Post("/customers/:customerId/equipments", v.saveEquipment)
	r.Put("/customers/:customerId/equipments/:id", v.saveEquipment)
	r.Delete("/customers/:customerId/equipments/:id", v.deleteEquipment)

	r.Get("/service-orders", v.serviceOrders)
	r.Post("/service-orders", v.saveServiceOrder)
	r.Put("/service-orders/:id", v.saveServiceOrder)
	r.Get("/service-orders/:id/items", v.serviceOrderItems)
	r.Get("/service-orders/:id/bills", v.serviceOrderBills)
	r.Delete("/service-orders/:id", v.deleteServiceOrder)

	r.Post("/service-order-items", v.saveServiceOrderItem)
	r.Put("/service-order-items/:id", v.saveServiceOrderItem)
	r.Delete("/service-order-items/:id", v.deleteServiceOrderItem)

	r.Post("/bills", v.saveBill)
	r.Put("/bills/:id", v.saveBill)
	r.Delete("/bills/:id", v.deleteBill)
	r.Get("/finance", v.finance)
}

// session builds a back office for the caller's token. Deletes are confirmed
// with ?confirm=true.
func (v *Views) session(c *fiber.Ctx) *Backoffice {
	confirm := ConfirmFunc(func(string) bool { return c.Query("confirm") == "true" })
	return New(v.api.WithToken(middlewares.SessionToken(c)), store.New(), confirm, v.log)
}

// apiFailure maps a client error onto the response of the view.
func apiFailure(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, apiErr.Message)
	}
	return fiber.NewError(fiber.StatusBadGateway, "api unavailable")
}

func viewID(c *fiber.Ctx) (uint, error) {
	return pathID(c, "id")
}

func pathID(c *fiber.Ctx, param string) (uint, error) {
	id, ok := utils.ParseID(c.Params(param))
	if !ok {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+param+" in path")
	}
	return id, nil
}

func (v *Views) customers(c *fiber.Ctx) error {
	b := v.session(c)
	if err := b.Customers.Mount(nil); err != nil {
		return apiFailure(err)
	}
	return c.JSON(fiber.Map{"data": b.Store.Customers.Items()})
}

type customerDetail struct {
	Customer   models.Customer    `json:"customer"`
	Addresses  []models.Address   `json:"addresses"`
	Equipments []models.Equipment `json:"equipments"`
}

func (v *Views) customerDetail(c *fiber.Ctx) error {
	id, err := viewID(c)
	if err != nil {
		return err
	}
	b := v.session(c)
	if err := b.Customers.Mount(nil); err != nil {
		return apiFailure(err)
	}
	customer, ok := b.Store.Customers.Find(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}
	if err := b.Addresses(id).Mount(nil); err != nil {
		return apiFailure(err)
	}
	if err := b.Equipments(id).Mount(nil); err != nil {
		return apiFailure(err)
	}
	return c.JSON(customerDetail{
		Customer:   customer,
		Addresses:  b.Store.Addresses.Items(),
		Equipments: b.Store.Equipments.Items(),
	})
}

// saveView submits the screen's form with the request body: POST creates,
// PUT edits :id. The saved record is returned under key.
func saveView[T store.Entity](c *fiber.Ctx, screen *Screen[T], key string) error {
	if len(c.Body()) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if c.Method() == fiber.MethodPut {
		id, err := viewID(c)
		if err != nil {
			return err
		}
		if err := screen.Mount(nil); err != nil {
			return apiFailure(err)
		}
		if !screen.Edit(id) {
			return fiber.NewError(fiber.StatusNotFound, screen.Name()+" not found")
		}
	} else {
		screen.New()
	}

	rec, err := screen.Submit(json.RawMessage(c.Body()))
	if err != nil {
		return apiFailure(err)
	}
	status := fiber.StatusOK
	if c.Method() == fiber.MethodPost {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{key: rec})
}

func (v *Views) saveCustomer(c *fiber.Ctx) error {
	return saveView(c, v.session(c).Customers, "customer")
}

func (v *Views) saveAddress(c *fiber.Ctx) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	return saveView(c, v.session(c).Addresses(customerID), "address")
}

func (v *Views) saveEquipment(c *fiber.Ctx) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	return saveView(c, v.session(c).Equipments(customerID), "equipment")
}

func (v *Views) saveServiceOrder(c *fiber.Ctx) error {
	return saveView(c, v.session(c).ServiceOrders, "serviceOrder")
}

func (v *Views) saveServiceOrderItem(c *fiber.Ctx) error {
	return saveView(c, v.session(c).ServiceOrderItems, "serviceOrderItem")
}

func (v *Views) saveBill(c *fiber.Ctx) error {
	return saveView(c, v.session(c).Bills, "bill")
}

func deleteView[T store.Entity](c *fiber.Ctx, screen *Screen[T]) error {
	id, err := viewID(c)
	if err != nil {
		return err
	}
	done, err := screen.Delete(id)
	if err != nil {
		return apiFailure(err)
	}
	if !done {
		return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{"message": "confirm with ?confirm=true"})
	}
	return c.JSON(fiber.Map{"message": screen.Name() + " deleted"})
}

func (v *Views) deleteCustomer(c *fiber.Ctx) error {
	return deleteView(c, v.session(c).Customers)
}

func (v *Views) deleteAddress(c *fiber.Ctx) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	return deleteView(c, v.session(c).Addresses(customerID))
}

func (v *Views) deleteEquipment(c *fiber.Ctx) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	return deleteView(c, v.session(c).Equipments(customerID))
}

func (v *Views) deleteServiceOrder(c *fiber.Ctx) error {
	return deleteView(c, v.session(c).ServiceOrders)
}

func (v *Views) deleteServiceOrderItem(c *fiber.Ctx) error {
	return deleteView(c, v.session(c).ServiceOrderItems)
}

func (v *Views) deleteBill(c *fiber.Ctx) error {
	return deleteView(c, v.session(c).Bills)
}

type serviceOrderRow struct {
	models.ServiceOrder
	CustomerName string `json:"customerName"`
}

func (v *Views) serviceOrders(c *fiber.Ctx) error {
	b := v.session(c)
	var query url.Values
	if raw := c.Query("customerId"); raw != "" {
		query = url.Values{"customerId": {raw}}
	}
	if err := b.ServiceOrders.Mount(query); err != nil {
		return apiFailure(err)
	}
	// Names are best effort; a failed customer fetch leaves raw ids.
	_ = b.Customers.Mount(nil)

	orders := b.Store.ServiceOrders.Items()
	rows := make([]serviceOrderRow, len(orders))
	for i, o := range orders {
		rows[i] = serviceOrderRow{ServiceOrder: o, CustomerName: b.CustomerName(o.CustomerID)}
	}
	return c.JSON(fiber.Map{"data": rows})
}

type itemRow struct {
	models.ServiceOrderItem
	EquipmentLabel string `json:"equipmentLabel"`
}

func (v *Views) serviceOrderItems(c *fiber.Ctx) error {
	id, err := viewID(c)
	if err != nil {
		return err
	}
	b := v.session(c)
	if err := b.ServiceOrders.Mount(nil); err != nil {
		return apiFailure(err)
	}
	order, ok := b.Store.ServiceOrders.Find(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "service order not found")
	}
	if err := b.ServiceOrderItems.Mount(url.Values{"serviceOrderId": {rawID(id)}}); err != nil {
		return apiFailure(err)
	}
	_ = b.Equipments(order.CustomerID).Mount(nil)

	items := b.Store.ServiceOrderItems.Items()
	rows := make([]itemRow, len(items))
	for i, it := range items {
		rows[i] = itemRow{ServiceOrderItem: it, EquipmentLabel: b.EquipmentLabel(it.EquipmentID)}
	}
	return c.JSON(fiber.Map{
		"serviceOrder": b.ServiceOrderLabel(id),
		"data":         rows,
	})
}

func (v *Views) serviceOrderBills(c *fiber.Ctx) error {
	id, err := viewID(c)
	if err != nil {
		return err
	}
	b := v.session(c)
	if err := b.Bills.Mount(url.Values{"serviceOrderId": {rawID(id)}}); err != nil {
		return apiFailure(err)
	}
	_ = b.ServiceOrders.Mount(nil)

	bills := b.OrderBills(id)
	return c.JSON(fiber.Map{
		"serviceOrder": b.ServiceOrderLabel(id),
		"data":         bills,
		"summary":      b.BillSummary(bills),
	})
}

func (v *Views) finance(c *fiber.Ctx) error {
	b := v.session(c)
	if err := b.Bills.Mount(nil); err != nil {
		return apiFailure(err)
	}
	bills := b.Store.Bills.Items()
	return c.JSON(fiber.Map{
		"data":    bills,
		"summary": b.BillSummary(bills),
	})
}
