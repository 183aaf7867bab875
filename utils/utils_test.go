package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patchDTO struct {
	Name    *string  `json:"name"`
	City    *string  `json:"city"`
	Amount  *float64 `json:"amount"`
	DueDate *string  `json:"dueDate"`
	Plain   string   `json:"plain"`
}

func strPtr(s string) *string { return &s }

func TestUpdatesFromPtrDTO(t *testing.T) {
	amount := 10.5
	dto := patchDTO{Name: strPtr("Ana"), Amount: &amount, DueDate: strPtr("2025-01-01"), Plain: "x"}

	got := UpdatesFromPtrDTO(&dto, map[string]string{"DueDate": "-", "Amount": "Total"})
	assert.Equal(t, map[string]any{"Name": "Ana", "Total": 10.5}, got)
}

func TestUpdatesFromPtrDTORequiresPointer(t *testing.T) {
	assert.Empty(t, UpdatesFromPtrDTO(patchDTO{Name: strPtr("Ana")}, nil))
}

type embeddedDTO struct {
	ID uint `json:"id"`
	patchDTO
}

type secretDTO struct {
	Email    string `json:"email"`
	Password string `json:"password" normalize:"-"`
	Total    float64
}

func TestNormalizePointerFields(t *testing.T) {
	amount := 10.456
	dto := patchDTO{Name: strPtr("  Ana "), Amount: &amount, Plain: " keep "}
	Normalize(&dto)
	assert.Equal(t, "Ana", *dto.Name)
	assert.Equal(t, 10.46, *dto.Amount)
	assert.Nil(t, dto.City)
	assert.Equal(t, "keep", dto.Plain)
}

func TestNormalizeEmbeddedAndSkipped(t *testing.T) {
	dto := embeddedDTO{ID: 3, patchDTO: patchDTO{Name: strPtr("   ")}}
	Normalize(&dto)
	assert.Equal(t, "", *dto.Name)

	s := secretDTO{Email: " a@b.com ", Password: " pass word ", Total: 1.005}
	Normalize(&s)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, " pass word ", s.Password)
	assert.Equal(t, Round2(1.005), s.Total)

	Normalize(s) // not a pointer, ignored
	Normalize((*secretDTO)(nil))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(1046), Cents(10.456))
	assert.Equal(t, int64(-250), Cents(-2.5))
	assert.Equal(t, 0.3, FromCents(Cents(0.1)+Cents(0.2)))
	assert.Equal(t, 49.99, Round2(49.9949))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}
