package push

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"ratepush/internal/adapters"
	"ratepush/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service owns pipeline execution: at most one run in flight, each run
// tagged with a UUID, the most recent RunReport retained in memory.
type Service struct {
	feed   adapters.FeedClient
	stores []adapters.PageStore
	cache  adapters.PageIDCache
	allow  map[string]struct{}

	// runCtx bounds async runs started by TriggerSync; it is the app's
	// root context so in-flight runs stop on shutdown.
	runCtx context.Context

	runMu sync.Mutex

	reportMu   sync.RWMutex
	lastReport *domain.RunReport
}

// RunOnce executes the pipeline synchronously. Returns
// domain.ErrSyncInProgress when another run holds the lock.
func (s *Service) RunOnce(ctx context.Context) (domain.RunReport, error) {
	if !s.runMu.TryLock() {
		return domain.RunReport{}, domain.ErrSyncInProgress
	}
	defer s.runMu.Unlock()
	return s.execute(ctx, uuid.NewString())
}

// TriggerSync starts an asynchronous run and returns its ID immediately.
func (s *Service) TriggerSync() (uuid.UUID, error) {
	if !s.runMu.TryLock() {
		return uuid.Nil, domain.ErrSyncInProgress
	}

	execID := uuid.New()
	s.setReport(domain.RunReport{
		RunID:     execID.String(),
		StartedAt: time.Now().UTC(),
		Status:    domain.RunRunning,
	})

	go func() {
		defer s.runMu.Unlock()
		if _, err := s.execute(s.runCtx, execID.String()); err != nil {
			logrus.WithError(err).Errorf("Triggered sync %s failed", execID)
		}
	}()

	return execID, nil
}

// LastRun returns the most recent run report, or domain.ErrNoRunsYet.
func (s *Service) LastRun() (domain.RunReport, error) {
	s.reportMu.RLock()
	defer s.reportMu.RUnlock()
	if s.lastReport == nil {
		return domain.RunReport{}, domain.ErrNoRunsYet
	}
	return *s.lastReport, nil
}

// TrackedCurrencies returns the sorted allow-list; empty means every
// currency in the feed is pushed.
func (s *Service) TrackedCurrencies() []string {
	codes := slices.Collect(maps.Keys(s.allow))
	slices.Sort(codes)
	return codes
}

func (s *Service) execute(ctx context.Context, execID string) (domain.RunReport, error) {
	report := domain.RunReport{
		RunID:     execID,
		StartedAt: time.Now().UTC(),
		Status:    domain.RunRunning,
	}

	result, err := PushRates(ctx, execID, s.feed, s.stores, s.cache, s.allow)

	report.FinishedAt = time.Now().UTC()
	report.FeedDate = result.FeedDate
	report.Created = result.Created
	report.Updated = result.Updated
	report.Failed = len(result.FailedCodes)
	report.FailedCodes = result.FailedCodes
	if err != nil {
		report.Status = domain.RunFailed
		report.Err = err.Error()
	} else {
		report.Status = domain.RunSucceeded
	}

	s.setReport(report)
	return report, err
}

func (s *Service) setReport(report domain.RunReport) {
	s.reportMu.Lock()
	defer s.reportMu.Unlock()
	s.lastReport = &report
}

func NewService(runCtx context.Context, feed adapters.FeedClient, stores []adapters.PageStore, cache adapters.PageIDCache, allow map[string]struct{}) *Service {
	return &Service{
		feed:   feed,
		stores: stores,
		cache:  cache,
		allow:  maps.Clone(allow),
		runCtx: runCtx,
	}
}
