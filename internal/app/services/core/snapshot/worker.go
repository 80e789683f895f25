package snapshot

import (
	"context"
	"opd-scheduler-service/internal/app/config"
	"opd-scheduler-service/internal/app/contracts"
	"opd-scheduler-service/internal/pkg/constvars"
	"opd-scheduler-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockTTL bounds how long one instance may own a snapshot run.
const leaderLockTTL = 2 * time.Minute

// Worker periodically exports the ledger to object storage.
type Worker struct {
	log                *zap.Logger
	cfg                *config.InternalConfig
	locker             contracts.LockerService
	appointmentUsecase contracts.AppointmentUsecase
	cron               *cron.Cron
	runCtx             context.Context
	cancel             context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, appointmentUsecase contracts.AppointmentUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, appointmentUsecase: appointmentUsecase}
}

// Start schedules runOnce on the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Snapshot.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("snapshot.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight exports and waits for the running job to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	acquired, token, err := w.locker.TryLock(ctx, constvars.SnapshotLeaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("snapshot.worker: leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("snapshot.worker: leader lock not acquired; another instance is exporting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.SnapshotLeaderLockKey, token)

	exportCtx, cancel := context.WithTimeout(ctx, leaderLockTTL)
	defer cancel()

	snapshot, err := w.appointmentUsecase.ExportSnapshot(exportCtx)
	if err != nil {
		w.log.Warn("snapshot.worker: export failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	w.log.Info("snapshot.worker: export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, snapshot.Bucket),
		zap.String(constvars.LoggingObjectKey, snapshot.ObjectName),
	)
}
