package models

import "time"

type DeviceType string

const (
	DeviceNotebook   DeviceType = "notebook"
	DeviceSmartphone DeviceType = "smartphone"
	DeviceTablet     DeviceType = "tablet"
	DeviceDesktop    DeviceType = "desktop"
	DeviceOther      DeviceType = "other"
)

func (d DeviceType) Valid() bool {
	switch d {
	case DeviceNotebook, DeviceSmartphone, DeviceTablet, DeviceDesktop, DeviceOther:
		return true
	}
	return false
}

type Equipment struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	DeviceType   DeviceType `json:"deviceType" gorm:"size:20;not null"`
	Brand        string     `json:"brand,omitempty" gorm:"size:100"`
	Model        string     `json:"model,omitempty" gorm:"size:100"`
	SerialNumber string     `json:"serialNumber,omitempty" gorm:"size:100"`
	CustomerID   uint       `json:"customerId" gorm:"not null;index"`
	CreatedAt    time.Time  `json:"createdAt"`

	Items []ServiceOrderItem `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (e Equipment) GetID() uint { return e.ID }

// Label is the human readable name of the device, e.g. "notebook Dell Inspiron".
func (e Equipment) Label() string {
	label := string(e.DeviceType)
	for _, part := range []string{e.Brand, e.Model} {
		if part != "" {
			label += " " + part
		}
	}
	return label
}
