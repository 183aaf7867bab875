package models

type Address struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Street       string `json:"street" gorm:"size:200;not null"`
	Number       string `json:"number" gorm:"size:20;not null"`
	Complement   string `json:"complement,omitempty" gorm:"size:100"`
	Neighborhood string `json:"neighborhood" gorm:"size:100;not null"`
	City         string `json:"city" gorm:"size:100;not null"`
	State        string `json:"state" gorm:"size:50;not null"`
	ZipCode      string `json:"zipCode,omitempty" gorm:"size:20"`
	CustomerID   uint   `json:"customerId" gorm:"not null;index"`
}

func (a Address) GetID() uint { return a.ID }
