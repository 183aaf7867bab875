package models

type ServiceOrderItemStatus string

const (
	ItemPending   ServiceOrderItemStatus = "pending"
	ItemExecuting ServiceOrderItemStatus = "executing"
	ItemCompleted ServiceOrderItemStatus = "completed"
)

func (s ServiceOrderItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemExecuting, ItemCompleted:
		return true
	}
	return false
}

// ServiceOrderItem is one piece of work on one equipment inside a service order.
type ServiceOrderItem struct {
	ID             uint                   `json:"id" gorm:"primaryKey"`
	Description    string                 `json:"description" gorm:"type:text"`
	Status         ServiceOrderItemStatus `json:"status,omitempty" gorm:"size:20"`
	EquipmentID    uint                   `json:"equipmentId" gorm:"not null;index"`
	ServiceOrderID uint                   `json:"serviceOrderId" gorm:"not null;index"`
}

func (i ServiceOrderItem) GetID() uint { return i.ID }
