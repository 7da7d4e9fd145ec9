package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventCleaner struct {
	mock.Mock
}

func (m *MockEventCleaner) Handle(ctx context.Context, command commands.CleanupEventsCommand) (int64, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(int64), args.Error(1)
}

type MockAwaitingOrders struct {
	mock.Mock
}

func (m *MockAwaitingOrders) ListAwaitingCourier(ctx context.Context, limit int) ([]int64, error) {
	args := m.Called(ctx, limit)
	if ids := args.Get(0); ids != nil {
		return ids.([]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAutoAssigner struct {
	mock.Mock
}

func (m *MockAutoAssigner) Handle(ctx context.Context, command commands.AutoAssignCommand) (commands.AutoAssignResult, error) {
	args := m.Called(ctx, command.OrderID())
	return args.Get(0).(commands.AutoAssignResult), args.Error(1)
}

func TestEventRetentionJob_Run(t *testing.T) {
	cleaner := new(MockEventCleaner)
	cleaner.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.CleanupEventsCommand) bool {
		return c.Retention() == 6*time.Hour
	})).Return(int64(4), nil).Once()

	job := NewEventRetentionJob(cleaner, 6*time.Hour, zerolog.Nop())

	require.NoError(t, job.Run(context.Background()))
	cleaner.AssertExpectations(t)
}

func TestEventRetentionJob_PropagatesError(t *testing.T) {
	cleaner := new(MockEventCleaner)
	cleaner.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	job := NewEventRetentionJob(cleaner, time.Hour, zerolog.Nop())

	assert.EqualError(t, job.Run(context.Background()), "db down")
}

func TestEventRetentionJob_RejectsBadRetention(t *testing.T) {
	cleaner := new(MockEventCleaner)
	job := NewEventRetentionJob(cleaner, 0, zerolog.Nop())

	assert.Error(t, job.Run(context.Background()))
	cleaner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func assignedTo(t *testing.T, orderID, courierID int64) commands.AutoAssignResult {
	t.Helper()
	c, err := courier.RestoreCourier(courier.RestoreParams{
		ID: courierID, UserID: courierID, RestaurantID: 1, Name: "Olga",
		Active: true, Status: courier.Available, Transport: courier.Bicycle,
	})
	require.NoError(t, err)
	best := services.RankedCourier{Courier: c, Score: 50}
	return commands.AutoAssignResult{Success: true, OrderID: orderID, Assigned: &best, Ranked: []services.RankedCourier{best}}
}

func TestAutoDispatchJob_ProcessesWholeBatch(t *testing.T) {
	orders := new(MockAwaitingOrders)
	orders.On("ListAwaitingCourier", mock.Anything, 10).Return([]int64{1, 2, 3}, nil)

	assigner := new(MockAutoAssigner)
	assigner.On("Handle", mock.Anything, int64(1)).Return(assignedTo(t, 1, 7), nil)
	assigner.On("Handle", mock.Anything, int64(2)).
		Return(commands.AutoAssignResult{OrderID: 2, Reason: commands.ReasonNoCouriersAvailable}, nil)
	assigner.On("Handle", mock.Anything, int64(3)).Return(assignedTo(t, 3, 8), nil)

	job := NewAutoDispatchJob(orders, assigner, 10, zerolog.Nop())

	require.NoError(t, job.Run(context.Background()))
	assigner.AssertNumberOfCalls(t, "Handle", 3)
}

func TestAutoDispatchJob_ContinuesAfterFailure(t *testing.T) {
	orders := new(MockAwaitingOrders)
	orders.On("ListAwaitingCourier", mock.Anything, 50).Return([]int64{1, 2}, nil)

	boom := errors.New("lock timeout")
	assigner := new(MockAutoAssigner)
	assigner.On("Handle", mock.Anything, int64(1)).Return(commands.AutoAssignResult{}, boom)
	assigner.On("Handle", mock.Anything, int64(2)).Return(assignedTo(t, 2, 7), nil)

	job := NewAutoDispatchJob(orders, assigner, 0, zerolog.Nop())

	err := job.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assigner.AssertNumberOfCalls(t, "Handle", 2)
}

func TestAutoDispatchJob_StopsOnCancelledContext(t *testing.T) {
	orders := new(MockAwaitingOrders)
	orders.On("ListAwaitingCourier", mock.Anything, 5).Return([]int64{1, 2}, nil)
	assigner := new(MockAutoAssigner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := NewAutoDispatchJob(orders, assigner, 5, zerolog.Nop())

	assert.ErrorIs(t, job.Run(ctx), context.Canceled)
	assigner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAutoDispatchJob_ListError(t *testing.T) {
	orders := new(MockAwaitingOrders)
	orders.On("ListAwaitingCourier", mock.Anything, 5).Return(nil, errors.New("db down"))

	job := NewAutoDispatchJob(orders, new(MockAutoAssigner), 5, zerolog.Nop())

	assert.EqualError(t, job.Run(context.Background()), "db down")
}

func TestJobManager_RunsRegisteredJobs(t *testing.T) {
	var runs atomic.Int32
	manager := NewJobManager(time.Second, zerolog.Nop())

	require.NoError(t, manager.Register("tick", "* * * * * *", JobFunc(func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})))
	require.NoError(t, manager.Register("disabled", "", JobFunc(func(context.Context) error {
		t.Error("disabled job ran")
		return nil
	})))
	assert.Equal(t, []string{"tick"}, manager.Jobs())

	manager.Start()
	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	manager.Stop(ctx)
}

func TestJobManager_CancelsRunningJobOnStop(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan error, 1)
	manager := NewJobManager(0, zerolog.Nop())

	var once atomic.Bool
	require.NoError(t, manager.Register("slow", "* * * * * *", JobFunc(func(ctx context.Context) error {
		if !once.CompareAndSwap(false, true) {
			return nil
		}
		close(started)
		<-ctx.Done()
		finished <- ctx.Err()
		return ctx.Err()
	})))

	manager.Start()
	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	manager.Stop(ctx)

	assert.ErrorIs(t, <-finished, context.Canceled)
}

func TestJobManager_RejectsBadSpec(t *testing.T) {
	manager := NewJobManager(time.Second, zerolog.Nop())
	assert.Error(t, manager.Register("broken", "every now and then", JobFunc(func(context.Context) error { return nil })))
	assert.Empty(t, manager.Jobs())
}
