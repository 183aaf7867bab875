package jobs

import (
	"context"
	"fmt"
	"time"

	"repairdesk-backend/database"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OverdueBills flips pending bills past their due date to overdue.
type OverdueBills struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewOverdueBills(db *gorm.DB, log *logrus.Logger) *OverdueBills {
	return &OverdueBills{db: db, log: log, now: time.Now}
}

// Run executes one pass. It implements cron.Job.
func (j *OverdueBills) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := database.MarkOverdueBills(ctx, j.db, j.now())
	if err != nil {
		j.log.WithError(err).Error("overdue bills job failed")
		return
	}
	if n > 0 {
		j.log.WithField("bills", n).Info("bills marked overdue")
	}
}

// Schedule registers job on a new cron scheduler. The caller starts and stops it.
func Schedule(spec string, job cron.Job, log *logrus.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log))))
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return c, nil
}
