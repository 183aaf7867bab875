package backoffice

import (
	"fmt"
	"strconv"

	"repairdesk-backend/client"
	"repairdesk-backend/models"
	"repairdesk-backend/store"

	"github.com/sirupsen/logrus"
)

// Backoffice wires every screen to one client and one store.
type Backoffice struct {
	api     *client.Client
	confirm Confirmer
	log     *logrus.Logger

	Store             *store.Store
	Customers         *Screen[models.Customer]
	ServiceOrders     *Screen[models.ServiceOrder]
	ServiceOrderItems *Screen[models.ServiceOrderItem]
	Bills             *Screen[models.Bill]
}

func New(api *client.Client, st *store.Store, confirm Confirmer, log *logrus.Logger) *Backoffice {
	return &Backoffice{
		api:               api,
		confirm:           confirm,
		log:               log,
		Store:             st,
		Customers:         NewScreen("customer", API[models.Customer](api.Customers()), st.Customers, confirm, log),
		ServiceOrders:     NewScreen("service order", API[models.ServiceOrder](api.ServiceOrders()), st.ServiceOrders, confirm, log),
		ServiceOrderItems: NewScreen("service order item", API[models.ServiceOrderItem](api.ServiceOrderItems()), st.ServiceOrderItems, confirm, log),
		Bills:             NewScreen("bill", API[models.Bill](api.Bills()), st.Bills, confirm, log),
	}
}

// Addresses returns the address screen of one customer.
func (b *Backoffice) Addresses(customerID uint) *Screen[models.Address] {
	return NewScreen("address", API[models.Address](b.api.Addresses(customerID)), b.Store.Addresses, b.confirm, b.log)
}

// Equipments returns the equipment screen of one customer.
func (b *Backoffice) Equipments(customerID uint) *Screen[models.Equipment] {
	return NewScreen("equipment", API[models.Equipment](b.api.Equipments(customerID)), b.Store.Equipments, b.confirm, b.log)
}

func rawID(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// CustomerName resolves a customer id for display, falling back to the id.
func (b *Backoffice) CustomerName(id uint) string {
	if c, ok := b.Store.Customers.Find(id); ok && c.Name != "" {
		return c.Name
	}
	return rawID(id)
}

// EquipmentLabel resolves an equipment id for display, falling back to the id.
func (b *Backoffice) EquipmentLabel(id uint) string {
	if e, ok := b.Store.Equipments.Find(id); ok {
		if label := e.Label(); label != "" {
			return label
		}
	}
	return rawID(id)
}

// ServiceOrderLabel resolves a service order id for display, falling back to the id.
func (b *Backoffice) ServiceOrderLabel(id uint) string {
	if o, ok := b.Store.ServiceOrders.Find(id); ok && o.Description != "" {
		return fmt.Sprintf("#%d %s", o.ID, o.Description)
	}
	return rawID(id)
}

// OrderBills returns the loaded bills of one service order.
func (b *Backoffice) OrderBills(serviceOrderID uint) []models.Bill {
	out := []models.Bill{}
	for _, bill := range b.Store.Bills.Items() {
		if bill.ServiceOrderID == serviceOrderID {
			out = append(out, bill)
		}
	}
	return out
}

// BillSummary totals bills per status for the finance page.
func (b *Backoffice) BillSummary(bills []models.Bill) models.BillSummary {
	return models.SummarizeBills(bills)
}
