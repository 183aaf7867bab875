package routes

import (
	"github.com/gofiber/fiber/v2"

	"repairdesk-backend/controllers"
	"repairdesk-backend/middlewares"
)

// Register wires all HTTP routes. guards run on every protected route after
// authentication, in order (e.g. Idempotency then RequestTx).
func Register(app *fiber.App, h *controllers.Handlers, guards ...fiber.Handler) {
	// Public endpoints
	app.Get("/hello", controllers.Hello)
	app.Post("/user", h.Register)
	app.Post("/user/login", h.Login)
	app.Post("/user/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := app.Group("", middlewares.IsAuthenticatedHeader())
	for _, g := range guards {
		protected.Use(g)
	}

	protected.Post("/user/validate", h.Validate)

	// Customers
	protected.Get("/customers", h.GetCustomers)
	protected.Post("/customers", h.CreateCustomer)
	protected.Patch("/customers", h.PatchCustomer)
	protected.Get("/customers/:id", h.GetCustomer)
	protected.Put("/customers/:id", h.UpdateCustomer)
	protected.Delete("/customers/:id", h.DeleteCustomer)

	// Addresses
	protected.Get("/customers/:customerId/addresses", h.GetAddresses)
	protected.Post("/customers/:customerId/addresses", h.CreateAddress)
	protected.Put("/customers/:customerId/addresses/:id", h.UpdateAddress)
	protected.Delete("/customers/:customerId/addresses/:id", h.DeleteAddress)

	// Equipment
	protected.Get("/customers/:customerId/equipments", h.GetEquipments)
	protected.Post("/customers/:customerId/equipments", h.CreateEquipment)
	protected.Put("/customers/:customerId/equipments/:id", h.UpdateEquipment)
	protected.Delete("/customers/:customerId/equipments/:id", h.DeleteEquipment)

	// Service orders
	protected.Get("/service-orders", h.GetServiceOrders)
	protected.Post("/service-orders", h.CreateServiceOrder)
	protected.Get("/service-orders/:id", h.GetServiceOrder)
	protected.Put("/service-orders/:id", h.UpdateServiceOrder)
	protected.Delete("/service-orders/:id", h.DeleteServiceOrder)

	// Service order items
	protected.Get("/service-order-item", h.GetServiceOrderItems)
	protected.Post("/service-order-item", h.CreateServiceOrderItem)
	protected.Put("/service-order-item/:id", h.UpdateServiceOrderItem)
	protected.Delete("/service-order-item/:id", h.DeleteServiceOrderItem)

	// Bills (summary before :id)
	protected.Get("/bills", h.GetBills)
	protected.Get("/bills/summary", h.GetBillSummary)
	protected.Post("/bills", h.CreateBill)
	protected.Get("/bills/:id", h.GetBill)
	protected.Put("/bills/:id", h.UpdateBill)
	protected.Delete("/bills/:id", h.DeleteBill)
	protected.Delete("/bill/:id", h.DeleteBill)
}
