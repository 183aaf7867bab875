package client

import (
	"net/url"
	"strconv"

	"repairdesk-backend/models"

	"github.com/gofiber/fiber/v2"
)

// Resource is the REST collection of one entity type.
type Resource[T any] struct {
	c    *Client
	path string
	key  string
	// deletePath overrides path for DELETE (bills are removed through /bill/:id).
	deletePath string
}

func newResource[T any](c *Client, path, key string) *Resource[T] {
	return &Resource[T]{c: c, path: path, key: key}
}

func (r *Resource[T]) item(base string, id uint) string {
	return base + "/" + strconv.FormatUint(uint64(id), 10)
}

// List fetches the collection, optionally filtered by query.
func (r *Resource[T]) List(query url.Values) ([]T, error) {
	body, err := r.c.do(fiber.MethodGet, r.path, query, nil)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := unwrap(body, "data", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(id uint) (*T, error) {
	body, err := r.c.do(fiber.MethodGet, r.item(r.path, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return r.record(body)
}

// Create posts in and returns the stored record. A successful answer without
// a record yields (nil, nil).
func (r *Resource[T]) Create(in any) (*T, error) {
	body, err := r.c.do(fiber.MethodPost, r.path, nil, in)
	if err != nil {
		return nil, err
	}
	return r.optional(body)
}

// Update sends a partial update. A successful answer without a record yields (nil, nil).
func (r *Resource[T]) Update(id uint, in any) (*T, error) {
	body, err := r.c.do(fiber.MethodPut, r.item(r.path, id), nil, in)
	if err != nil {
		return nil, err
	}
	return r.optional(body)
}

func (r *Resource[T]) Delete(id uint) error {
	base := r.path
	if r.deletePath != "" {
		base = r.deletePath
	}
	_, err := r.c.do(fiber.MethodDelete, r.item(base, id), nil, nil)
	return err
}

func (r *Resource[T]) record(body []byte) (*T, error) {
	var v T
	if err := unwrap(body, r.key, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Resource[T]) optional(body []byte) (*T, error) {
	v, err := r.record(body)
	if err == ErrNoRecord {
		return nil, nil
	}
	return v, err
}

func (c *Client) Customers() *Resource[models.Customer] {
	return newResource[models.Customer](c, "customers", "customer")
}

func (c *Client) Addresses(customerID uint) *Resource[models.Address] {
	return newResource[models.Address](c, "customers/"+strconv.FormatUint(uint64(customerID), 10)+"/addresses", "address")
}

func (c *Client) Equipments(customerID uint) *Resource[models.Equipment] {
	return newResource[models.Equipment](c, "customers/"+strconv.FormatUint(uint64(customerID), 10)+"/equipments", "equipment")
}

func (c *Client) ServiceOrders() *Resource[models.ServiceOrder] {
	return newResource[models.ServiceOrder](c, "service-orders", "serviceOrder")
}

func (c *Client) ServiceOrderItems() *Resource[models.ServiceOrderItem] {
	return newResource[models.ServiceOrderItem](c, "service-order-item", "serviceOrderItem")
}

func (c *Client) Bills() *Resource[models.Bill] {
	r := newResource[models.Bill](c, "bills", "bill")
	r.deletePath = "bill"
	return r
}

// BillSummary fetches server-side totals, optionally filtered like Bills().List.
func (c *Client) BillSummary(query url.Values) (models.BillSummary, error) {
	var s models.BillSummary
	body, err := c.do(fiber.MethodGet, "bills/summary", query, nil)
	if err != nil {
		return s, err
	}
	err = unwrap(body, "summary", &s)
	return s, err
}
