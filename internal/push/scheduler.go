package push

import (
	"context"
	"errors"

	"ratepush/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const defaultCron = "0 7 * * *"

// Scheduler fires the pipeline on a cron expression, typically once a day
// shortly after the feed publishes.
type Scheduler struct {
	service  *Service
	cronExpr string
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		report, runErr := s.service.RunOnce(jobCtx)
		if runErr != nil {
			if errors.Is(runErr, domain.ErrSyncInProgress) {
				logrus.Info("Scheduled sync skipped, another run is in flight")
				return
			}
			logrus.Errorf("Scheduled sync %s failed: %v", report.RunID, runErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.cronExpr, false),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(service *Service, cronExpr string) *Scheduler {
	if cronExpr == "" {
		cronExpr = defaultCron
	}
	return &Scheduler{service: service, cronExpr: cronExpr}
}
