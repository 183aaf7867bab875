package store

import (
	"sync"
	"testing"

	"repairdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customers(names ...string) []models.Customer {
	out := make([]models.Customer, len(names))
	for i, n := range names {
		out[i] = models.Customer{ID: uint(i + 1), Name: n}
	}
	return out
}

func names(items []models.Customer) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name
	}
	return out
}

func TestSetReplacesAndClearsSelection(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Set(customers("Ana", "Bob"))
	require.True(t, c.Select(2))

	c.Set(customers("Caio"))
	assert.Equal(t, []string{"Caio"}, names(c.Items()))
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestSetKeepsIdsUnique(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Set([]models.Customer{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bob"}, {ID: 1, Name: "Ana Maria"}})
	assert.Equal(t, []string{"Ana Maria", "Bob"}, names(c.Items()))
}

func TestAddUpdateRemove(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Add(models.Customer{ID: 1, Name: "Ana"})
	c.Add(models.Customer{ID: 2, Name: "Bob"})
	c.Add(models.Customer{ID: 1, Name: "Ana Souza"})
	assert.Equal(t, []string{"Ana Souza", "Bob"}, names(c.Items()))

	assert.True(t, c.Update(models.Customer{ID: 2, Name: "Roberto"}))
	assert.False(t, c.Update(models.Customer{ID: 9, Name: "Ghost"}))
	assert.Equal(t, []string{"Ana Souza", "Roberto"}, names(c.Items()))

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, []string{"Roberto"}, names(c.Items()))
	assert.Equal(t, 1, c.Len())
}

func TestSelection(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Set(customers("Ana", "Bob"))

	require.True(t, c.Select(1))
	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Ana", sel.Name)

	c.Update(models.Customer{ID: 1, Name: "Ana Souza"})
	sel, _ = c.Selected()
	assert.Equal(t, "Ana Souza", sel.Name)

	assert.False(t, c.Select(42))
	_, ok = c.Selected()
	assert.False(t, ok)

	c.Select(2)
	c.Remove(2)
	_, ok = c.Selected()
	assert.False(t, ok)

	c.Select(1)
	c.ClearSelected()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestItemsIsACopy(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Set(customers("Ana"))
	items := c.Items()
	items[0].Name = "changed"

	got, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)
	_, ok = c.Find(2)
	assert.False(t, ok)
}

func TestRemoveDoesNotAliasPreviousItems(t *testing.T) {
	c := NewCollection[models.Customer]()
	c.Set(customers("Ana", "Bob", "Caio"))
	before := c.Items()
	c.Remove(1)
	assert.Equal(t, []string{"Ana", "Bob", "Caio"}, names(before))
	assert.Equal(t, []string{"Bob", "Caio"}, names(c.Items()))
}

func TestConcurrentWriters(t *testing.T) {
	c := NewCollection[models.Bill]()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			c.Add(models.Bill{ID: id, Amount: 10})
			c.Find(id)
			c.Items()
		}(uint(i))
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestStoreReset(t *testing.T) {
	s := New()
	s.Customers.Set(customers("Ana"))
	s.Bills.Add(models.Bill{ID: 1})
	s.ServiceOrders.Add(models.ServiceOrder{ID: 3})
	s.ServiceOrders.Select(3)

	s.Reset()
	assert.Zero(t, s.Customers.Len())
	assert.Zero(t, s.Bills.Len())
	assert.Zero(t, s.ServiceOrders.Len())
	_, ok := s.ServiceOrders.Selected()
	assert.False(t, ok)
}
