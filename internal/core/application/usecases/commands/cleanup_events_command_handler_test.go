package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanupEventsCommand(t *testing.T) {
	_, err := commands.NewCleanupEventsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewCleanupEventsCommand(-time.Hour)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewCleanupEventsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.Retention())
}

func TestCleanupEventsCommandHandler(t *testing.T) {
	ctx := t.Context()
	events := new(MockEventRepository)
	cmd, err := commands.NewCleanupEventsCommand(24 * time.Hour)
	require.NoError(t, err)

	events.On("DeleteOlderThan", ctx, fixedNow.Add(-24*time.Hour)).Return(int64(12), nil).Once()

	deleted, err := commands.NewCleanupEventsCommandHandler(events).WithClock(clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	events.AssertExpectations(t)
}
