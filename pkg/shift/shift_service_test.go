package shift

import (
	"context"
	"testing"
	"time"

	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceSetup(t *testing.T) (*ShiftServiceImpl, *event_bus.EventBus, context.Context, func()) {
	repo := NewStubShiftRepo()
	bus := event_bus.NewEventBus()
	service := NewShiftServiceImpl(repo, bus)

	return service, bus, context.Background(), func() {
		repo.Cleanup()
	}
}

func TestShiftServiceImpl_Create(t *testing.T) {
	service, bus, ctx, teardown := serviceSetup(t)
	defer teardown()

	var received []event_bus.ShiftChanged
	event_bus.SubscribeTyped(bus, event_bus.ShiftCreatedEvent,
		func(e event_bus.EventT[event_bus.ShiftChanged]) error {
			received = append(received, e.Data)
			return nil
		})

	created, err := service.Create(ctx, Shift{
		StreamID:  "stream-1",
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		StartTime: ClockTime{Hour: 9, Minute: 0},
		EndTime:   ClockTime{Hour: 17, Minute: 0},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, received, 1)
	assert.Equal(t, created.ID, received[0].Id)
	assert.Equal(t, "stream-1", received[0].StreamId)
}

func TestShiftServiceImpl_Create_RequiresStream(t *testing.T) {
	service, _, ctx, teardown := serviceSetup(t)
	defer teardown()

	_, err := service.Create(ctx, Shift{})

	assert.Error(t, err)
}

func TestShiftServiceImpl_Create_RejectsNegativeBreak(t *testing.T) {
	service, _, ctx, teardown := serviceSetup(t)
	defer teardown()

	_, err := service.Create(ctx, Shift{StreamID: "stream-1", BreakMinutes: -15})

	assert.Error(t, err)
}

func TestShiftServiceImpl_CountByStream(t *testing.T) {
	service, _, ctx, teardown := serviceSetup(t)
	defer teardown()

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.Create(ctx, Shift{StreamID: "stream-1", Date: date})
	require.NoError(t, err)
	_, err = service.Create(ctx, Shift{StreamID: "stream-1", Date: date})
	require.NoError(t, err)
	_, err = service.Create(ctx, Shift{StreamID: "stream-2", Date: date})
	require.NoError(t, err)

	count, err := service.CountByStream(ctx, "stream-1")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestShiftServiceImpl_Update_MissingShift(t *testing.T) {
	service, _, ctx, teardown := serviceSetup(t)
	defer teardown()

	updated, err := service.Update(ctx, Shift{ID: "does-not-exist", StreamID: "stream-1"})

	require.NoError(t, err)
	assert.False(t, updated)
}
