package database

import (
	"sync"
	"testing"

	"repairdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestDeletesCascadeToChildren(t *testing.T) {
	cases := []struct {
		model      any
		relation   string
		childTable string
		foreignKey string
	}{
		{&models.Customer{}, "Addresses", "addresses", "customer_id"},
		{&models.Customer{}, "Equipment", "equipment", "customer_id"},
		{&models.Customer{}, "ServiceOrders", "service_orders", "customer_id"},
		{&models.ServiceOrder{}, "Items", "service_order_items", "service_order_id"},
		{&models.ServiceOrder{}, "Bills", "bills", "service_order_id"},
		{&models.Equipment{}, "Items", "service_order_items", "equipment_id"},
	}

	cache := &sync.Map{}
	for _, tc := range cases {
		s, err := schema.Parse(tc.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		rel, ok := s.Relationships.Relations[tc.relation]
		require.True(t, ok, "%s.%s", s.Name, tc.relation)
		assert.Equal(t, tc.childTable, rel.FieldSchema.Table)

		c := rel.ParseConstraint()
		require.NotNil(t, c, "%s.%s has no foreign key constraint", s.Name, tc.relation)
		assert.Equal(t, "CASCADE", c.OnDelete, "%s.%s", s.Name, tc.relation)
		require.Len(t, c.ForeignKeys, 1)
		assert.Equal(t, tc.foreignKey, c.ForeignKeys[0].DBName)
	}
}

func TestCheckConstraintsAreGuarded(t *testing.T) {
	stmts := checkConstraints()
	require.NotEmpty(t, stmts)
	for _, stmt := range stmts {
		assert.Contains(t, stmt, "IF NOT EXISTS")
		assert.Contains(t, stmt, "ADD CONSTRAINT chk_")
	}
}
