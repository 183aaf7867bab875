package models

import (
	"time"

	"repairdesk-backend/utils"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "creditCard"
	PaymentDebitCard  PaymentMethod = "debitCard"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBoleto:
		return true
	}
	return false
}

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillPending, BillPaid, BillOverdue:
		return true
	}
	return false
}

// Bill is one installment charged for a service order.
type Bill struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Amount         float64        `json:"amount" gorm:"type:numeric(12,2);not null"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod" gorm:"size:20;not null"`
	DueDate        Date           `json:"dueDate" gorm:"not null;index"`
	Status         BillStatus     `json:"status" gorm:"size:20;not null;index"`
	ServiceOrderID uint           `json:"serviceOrderId" gorm:"not null;index"`
}

func (b Bill) GetID() uint { return b.ID }

// Due returns the due date as a time.Time.
func (b Bill) Due() time.Time { return time.Time(b.DueDate) }

// BillSummary aggregates amounts and counts per bill status.
type BillSummary struct {
	Total        float64 `json:"total"`
	Paid         float64 `json:"paid"`
	Pending      float64 `json:"pending"`
	Overdue      float64 `json:"overdue"`
	PaidCount    int     `json:"paidCount"`
	PendingCount int     `json:"pendingCount"`
	OverdueCount int     `json:"overdueCount"`
}

// SummarizeBills totals bills by status. Sums are kept in cents.
func SummarizeBills(bills []Bill) BillSummary {
	var total, paid, pending, overdue int64
	var s BillSummary
	for _, b := range bills {
		cents := utils.Cents(b.Amount)
		total += cents
		switch b.Status {
		case BillPaid:
			paid += cents
			s.PaidCount++
		case BillPending:
			pending += cents
			s.PendingCount++
		case BillOverdue:
			overdue += cents
			s.OverdueCount++
		}
	}
	s.Total = utils.FromCents(total)
	s.Paid = utils.FromCents(paid)
	s.Pending = utils.FromCents(pending)
	s.Overdue = utils.FromCents(overdue)
	return s
}
