package store

import "repairdesk-backend/models"

// Store is the single place screens read and write entity state.
type Store struct {
	Customers         *Collection[models.Customer]
	Addresses         *Collection[models.Address]
	Equipments        *Collection[models.Equipment]
	ServiceOrders     *Collection[models.ServiceOrder]
	ServiceOrderItems *Collection[models.ServiceOrderItem]
	Bills             *Collection[models.Bill]
}

func New() *Store {
	return &Store{
		Customers:         NewCollection[models.Customer](),
		Addresses:         NewCollection[models.Address](),
		Equipments:        NewCollection[models.Equipment](),
		ServiceOrders:     NewCollection[models.ServiceOrder](),
		ServiceOrderItems: NewCollection[models.ServiceOrderItem](),
		Bills:             NewCollection[models.Bill](),
	}
}

// Reset empties every collection, e.g. after logout.
func (s *Store) Reset() {
	s.Customers.Clear()
	s.Addresses.Clear()
	s.Equipments.Clear()
	s.ServiceOrders.Clear()
	s.ServiceOrderItems.Clear()
	s.Bills.Clear()
}
