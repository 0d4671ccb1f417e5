package workers

import (
	"time"

	"github.com/robfig/cron/v3"

	"askmind_backend/internal/logger"
	"askmind_backend/internal/services"
)

// SubscriptionWorker runs the periodic subscription lifecycle sweeps:
// the renewal sweep and the expiry sweep, each on its own schedule.
type SubscriptionWorker struct {
	service services.SubscriptionService

	renewalSchedule string
	expirySchedule  string
	cron            *cron.Cron
}

func NewSubscriptionWorker(service services.SubscriptionService, renewalSchedule, expirySchedule string) *SubscriptionWorker {
	return &SubscriptionWorker{
		service:         service,
		renewalSchedule: renewalSchedule,
		expirySchedule:  expirySchedule,
		cron:            cron.New(),
	}
}

// Start registers the sweep jobs and starts the scheduler.
func (w *SubscriptionWorker) Start() error {
	if _, err := w.cron.AddFunc(w.renewalSchedule, w.runRenewals); err != nil {
		return err
	}
	if _, err := w.cron.AddFunc(w.expirySchedule, w.runExpirations); err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("subscription worker started",
		"renewal_schedule", w.renewalSchedule,
		"expiry_schedule", w.expirySchedule,
	)
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (w *SubscriptionWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info("subscription worker stopped")
}

func (w *SubscriptionWorker) runRenewals() {
	err := w.service.ProcessRenewals(time.Now())
	logger.WorkerLog("subscription_worker", "process_renewals", err)
}

func (w *SubscriptionWorker) runExpirations() {
	err := w.service.ProcessExpirations(time.Now())
	logger.WorkerLog("subscription_worker", "process_expirations", err)
}
