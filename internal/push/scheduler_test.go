package push

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "0 7 * * *")
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestNewScheduler_DefaultsCronWhenEmpty(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "")
	require.Equal(t, defaultCron, s.cronExpr)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "0 7 * * *")
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "0 7 * * *")
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	cancel()

	// Wait until s.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Nil(t, s.sched, "expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Start_InvalidCron_Errors(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "not a cron expr")
	err := s.Start(context.Background())
	require.Error(t, err)
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewScheduler(newTestService(new(MockFeedClient), nil, nil), "0 7 * * *")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)

	require.NoError(t, s.Shutdown())
}
