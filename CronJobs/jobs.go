package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"DailyTodo/Clock"
	"DailyTodo/Services"
)

// DailyReconciler warms the new logical day shortly after the reset
// hour. The system stays pull-based (every request reconciles anyway);
// this only keeps the morning's first page load fast.
type DailyReconciler struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	runImmediately bool
	jobID          cron.EntryID
}

// NewDailyReconciler creates a new reconcile scheduler
func NewDailyReconciler(db *gorm.DB, runImmediately bool) *DailyReconciler {
	return &DailyReconciler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		runImmediately: runImmediately,
	}
}

// Start schedules the reconcile job five minutes past the day boundary
func (r *DailyReconciler) Start() error {
	var err error
	schedule := fmt.Sprintf("0 5 %d * * *", Clock.ResetHour)
	r.jobID, err = r.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled day reconcile")
		r.runReconcile()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	r.cronScheduler.Start()
	log.Printf("Reconcile scheduler started - will run daily at %02d:05", Clock.ResetHour)

	if r.runImmediately {
		r.runReconcile()
	}
	return nil
}

// Stop terminates the scheduler
func (r *DailyReconciler) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
		log.Println("Reconcile scheduler stopped")
	}
}

func (r *DailyReconciler) runReconcile() {
	if err := Services.EnsureDayExists(r.db, nil); err != nil {
		log.Printf("Scheduled reconcile failed: %v", err)
	}
}
