package database

import (
	"context"
	"fmt"
	"time"

	"repairdesk-backend/models"

	"gorm.io/gorm"
)

// MarkOverdueBills flips pending bills due before today to overdue and
// reports how many rows changed.
func MarkOverdueBills(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	res := Conn(ctx, db).Model(&models.Bill{}).
		Where("status = ? AND due_date < ?", models.BillPending, today).
		Update("status", models.BillOverdue)
	if res.Error != nil {
		return 0, fmt.Errorf("mark overdue bills: %w", res.Error)
	}
	return res.RowsAffected, nil
}
