package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBills(t *testing.T) {
	due := NewDate(time.Date(2025, 6, 20, 15, 4, 0, 0, time.UTC))
	bills := []Bill{
		{ID: 1, Amount: 100.10, Status: BillPaid, DueDate: due},
		{ID: 2, Amount: 50.20, Status: BillPending, DueDate: due},
		{ID: 3, Amount: 25.05, Status: BillPending, DueDate: due},
		{ID: 4, Amount: 10, Status: BillOverdue, DueDate: due},
	}

	s := SummarizeBills(bills)
	assert.Equal(t, 185.35, s.Total)
	assert.Equal(t, 100.10, s.Paid)
	assert.Equal(t, 75.25, s.Pending)
	assert.Equal(t, 10.0, s.Overdue)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 2, s.PendingCount)
	assert.Equal(t, 1, s.OverdueCount)
}

func TestDateJSON(t *testing.T) {
	raw, err := json.Marshal(Bill{ID: 1, DueDate: NewDate(time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"dueDate":"2025-01-10"`)

	var b Bill
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2025-07-05"}`), &b))
	assert.Equal(t, "2025-07-05", b.DueDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2025-07-05T00:00:00Z"}`), &b))
	assert.Equal(t, time.July, b.Due().Month())

	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"05/07/2025"}`), &b))
}

func TestDateValueDropsClock(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), v)

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, d.String(), scanned.String())

	_, err = ParseDate("2025-13-01")
	assert.Error(t, err)
}

func TestSummarizeBillsEmpty(t *testing.T) {
	assert.Equal(t, BillSummary{}, SummarizeBills(nil))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, DocumentCNPJ.Valid())
	assert.False(t, DocumentType("ssn").Valid())
	assert.True(t, DeviceTablet.Valid())
	assert.False(t, DeviceType("watch").Valid())
	assert.True(t, ServiceOrderInProgress.Valid())
	assert.False(t, ServiceOrderStatus("done").Valid())
	assert.True(t, ItemExecuting.Valid())
	assert.True(t, PaymentPix.Valid())
	assert.False(t, PaymentMethod("check").Valid())
	assert.True(t, BillOverdue.Valid())
	assert.False(t, BillStatus("void").Valid())
}

func TestEquipmentLabel(t *testing.T) {
	assert.Equal(t, "notebook Dell Inspiron", Equipment{DeviceType: DeviceNotebook, Brand: "Dell", Model: "Inspiron"}.Label())
	assert.Equal(t, "other", Equipment{DeviceType: DeviceOther}.Label())
}

func TestUserPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("s3cret!"))
	assert.NotEqual(t, []byte("s3cret!"), u.Password)
	assert.NoError(t, u.ComparePassword("s3cret!"))
	assert.Error(t, u.ComparePassword("wrong"))
}
