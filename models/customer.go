package models

import "time"

type DocumentType string

const (
	DocumentCPF        DocumentType = "cpf"
	DocumentRG         DocumentType = "rg"
	DocumentCNH        DocumentType = "cnh"
	DocumentPassaporte DocumentType = "passaporte"
	DocumentCNPJ       DocumentType = "cnpj"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocumentCPF, DocumentRG, DocumentCNH, DocumentPassaporte, DocumentCNPJ:
		return true
	}
	return false
}

type Customer struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"size:150;not null"`
	Document     string       `json:"document,omitempty" gorm:"size:30"`
	DocumentType DocumentType `json:"documentType,omitempty" gorm:"size:20"`
	Phone        string       `json:"phone,omitempty" gorm:"size:30"`
	Email        string       `json:"email,omitempty" gorm:"size:150"`
	CreatedAt    time.Time    `json:"createdAt"`

	Addresses     []Address      `json:"addresses,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Equipment     []Equipment    `json:"equipment,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ServiceOrders []ServiceOrder `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (c Customer) GetID() uint { return c.ID }
