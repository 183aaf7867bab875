package database

import (
	"fmt"

	"repairdesk-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/foreign keys)
// - Composite indexes used by the list screens
// - Basic CHECK constraints (postgres only)
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Customer{},
			&models.Address{},
			&models.Equipment{},
			&models.ServiceOrder{},
			&models.ServiceOrderItem{},
			&models.Bill{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		if tx.Dialector.Name() != "postgres" {
			return nil
		}

		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_bills_status_due_date ON bills (status, due_date)`,
			`CREATE INDEX IF NOT EXISTS idx_service_orders_customer_created ON service_orders (customer_id, created_at)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		for _, stmt := range checkConstraints() {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}
		return nil
	})
}

func checkConstraints() []string {
	checks := []struct{ table, name, expr string }{
		{"bills", "chk_bills_amount_positive", "amount > 0"},
		{"bills", "chk_bills_status", "status IN ('pending','paid','overdue')"},
		{"bills", "chk_bills_payment_method", "payment_method IN ('cash','creditCard','debitCard','pix','boleto')"},
		{"service_orders", "chk_service_orders_estimate_nonneg", "estimate >= 0"},
		{"service_orders", "chk_service_orders_status", "status IN ('open','inProgress','completed','canceled')"},
		{"equipment", "chk_equipment_device_type", "device_type IN ('notebook','smartphone','tablet','desktop','other')"},
	}

	out := make([]string, 0, len(checks))
	for _, c := range checks {
		out = append(out, fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE conrelid = '%[1]s'::regclass
		  AND conname  = '%[2]s'
	) THEN
		ALTER TABLE %[1]s
		ADD CONSTRAINT %[2]s
		CHECK (%[3]s);
	END IF;
END $$;`, c.table, c.name, c.expr))
	}
	return out
}
