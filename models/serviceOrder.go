package models

import "time"

type ServiceOrderStatus string

const (
	ServiceOrderOpen       ServiceOrderStatus = "open"
	ServiceOrderInProgress ServiceOrderStatus = "inProgress"
	ServiceOrderCompleted  ServiceOrderStatus = "completed"
	ServiceOrderCanceled   ServiceOrderStatus = "canceled"
)

func (s ServiceOrderStatus) Valid() bool {
	switch s {
	case ServiceOrderOpen, ServiceOrderInProgress, ServiceOrderCompleted, ServiceOrderCanceled:
		return true
	}
	return false
}

// ServiceOrder is a repair job opened for a customer.
type ServiceOrder struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Description string             `json:"description" gorm:"type:text;not null"`
	Status      ServiceOrderStatus `json:"status" gorm:"size:20;not null;default:open"`
	Estimate    float64            `json:"estimate" gorm:"type:numeric(12,2)"`
	CustomerID  uint               `json:"customerId" gorm:"not null;index"`
	CreatedAt   time.Time          `json:"createdAt"`

	Items []ServiceOrderItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Bills []Bill             `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (o ServiceOrder) GetID() uint { return o.ID }
